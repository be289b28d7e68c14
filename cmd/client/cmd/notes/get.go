package notes

import (
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать заметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		n, err := app.GetNote(cmd.Context(), args[0])
		if err != nil {
			return explain("ошибка получения заметки", err)
		}

		return types.Printer(cmd, app).Note(n)
	},
}
