package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Зарегистрировать нового пользователя",
	Long: `Регистрация нового пользователя на сервере.

Сервер сразу выдает токен, повторный вход не нужен.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		username, password, err := readCredentials(cmd, true)
		if err != nil {
			return err
		}

		if err := app.Register(cmd.Context(), username, password); err != nil {
			return fmt.Errorf("ошибка регистрации: %w", err)
		}

		types.Printer(cmd, app).Success("Пользователь '%s' зарегистрирован", username)
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringP("username", "u", "", "имя пользователя")
}
