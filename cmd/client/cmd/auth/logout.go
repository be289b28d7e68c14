package auth

import (
	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти и удалить сохраненный токен",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.ClearToken(); err != nil {
			return err
		}

		types.Printer(cmd, app).Success("Выход выполнен")
		return nil
	},
}
