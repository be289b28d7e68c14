package notes

import (
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var CreateCmd = &cobra.Command{
	Use:     "create",
	Short:   "Создать заметку",
	Example: `  notekeeper notes create --title "Покупки" -i молоко -i хлеб`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		title, items, err := writeFlags(cmd)
		if err != nil {
			return err
		}

		n, err := app.CreateNote(cmd.Context(), title, items)
		if err != nil {
			return explain("ошибка создания заметки", err)
		}

		return types.Printer(cmd, app).Note(n)
	},
}

func init() {
	addWriteFlags(CreateCmd)
}
