package types

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/client"
	"notekeeper/internal/app/client/output"
)

type ctxKey string

// ClientAppKey - ключ контекста, под которым root кладет *client.App.
const ClientAppKey ctxKey = "app"

var ErrNoApp = errors.New("приложение не инициализировано")

func WithApp(ctx context.Context, app *client.App) context.Context {
	return context.WithValue(ctx, ClientAppKey, app)
}

func AppFromContext(ctx context.Context) (*client.App, error) {
	app, ok := ctx.Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}

// Printer печатает в stdout команды в формате из конфигурации.
func Printer(cmd *cobra.Command, app *client.App) *output.Printer {
	return output.New(cmd.OutOrStdout(), app.Config().Output)
}
