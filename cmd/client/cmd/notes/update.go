package notes

import (
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Заменить заголовок и пункты заметки",
	Long: `Полностью заменяет заголовок и пункты заметки.

Пункты, не переданные через --item, будут удалены.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		title, items, err := writeFlags(cmd)
		if err != nil {
			return err
		}

		n, err := app.UpdateNote(cmd.Context(), args[0], title, items)
		if err != nil {
			return explain("ошибка изменения заметки", err)
		}

		return types.Printer(cmd, app).Note(n)
	},
}

func init() {
	addWriteFlags(UpdateCmd)
}
