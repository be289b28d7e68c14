package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций с авторизацией пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление пользователем",
	Long:  `Регистрация, вход, обновление токена и выход.`,
}

func init() {
	AuthCmd.AddCommand(RegisterCmd)
	AuthCmd.AddCommand(LoginCmd)
	AuthCmd.AddCommand(RefreshCmd)
	AuthCmd.AddCommand(LogoutCmd)
}
