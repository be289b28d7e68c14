package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	Long: `Открывает хранилище (для postgres сначала применяются миграции)
и обслуживает API до SIGINT/SIGTERM, после чего корректно завершается.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	if err := srv.Run(ctx); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}

