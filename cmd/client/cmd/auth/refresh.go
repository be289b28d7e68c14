package auth

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
)

var RefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Обновить истекший токен",
	Long: `Обменивает сохраненный истекший токен на новый.

Сервер отклоняет обновление токена, срок которого еще не истек.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.Refresh(cmd.Context()); err != nil {
			if client.IsStatus(err, http.StatusBadRequest) {
				return fmt.Errorf("токен еще действителен: %w", err)
			}
			return fmt.Errorf("ошибка обновления токена: %w", err)
		}

		types.Printer(cmd, app).Success("Токен обновлен")
		return nil
	},
}
