package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти в систему",
	Long: `Аутентификация на сервере.

После входа токен сохраняется локально для последующих операций.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		username, password, err := readCredentials(cmd, false)
		if err != nil {
			return err
		}

		if err := app.Login(cmd.Context(), username, password); err != nil {
			return fmt.Errorf("ошибка аутентификации: %w", err)
		}

		types.Printer(cmd, app).Success("Вход выполнен успешно")
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringP("username", "u", "", "имя пользователя")
}
