package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/utils/logger"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	runAddress string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper-server",
	Short: "Notekeeper - HTTP API для личных заметок",
	Long: `Сервер регистрирует пользователей, выдает JWT и хранит заметки
в PostgreSQL или во встроенной BadgerDB (STORAGE_DRIVER).

Без подкоманды выполняется serve.`,
	PersistentPreRunE: setup,
	RunE:              runServe,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// флаги важнее переменных окружения
	if runAddress != "" {
		cfg.Server.RunAddress = runAddress
	}
	if logLevel != "" {
		cfg.Logger.LogLevel = logLevel
	}

	log = logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&runAddress, "address", "a", "", "адрес HTTP сервера (RUN_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "уровень логирования: debug, info, warn, error (LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
