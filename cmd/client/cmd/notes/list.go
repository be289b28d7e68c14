package notes

import (
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		notes, err := app.ListNotes(cmd.Context())
		if err != nil {
			return explain("ошибка получения списка заметок", err)
		}

		return types.Printer(cmd, app).Notes(notes)
	},
}
