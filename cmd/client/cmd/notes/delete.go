package notes

import (
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client/output"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Удалить заметку",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		n, err := app.DeleteNote(cmd.Context(), args[0])
		if err != nil {
			return explain("ошибка удаления заметки", err)
		}

		p := types.Printer(cmd, app)
		if app.Config().Output != output.FormatText {
			return p.Note(n)
		}
		p.Success("Заметка '%s' удалена", n.Title)
		return nil
	},
}
