package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"notekeeper/cmd/client/cmd/auth"
	"notekeeper/cmd/client/cmd/notes"
	"notekeeper/cmd/client/cmd/types"
	"notekeeper/internal/app/client"
	"notekeeper/internal/app/client/config"
	"notekeeper/internal/utils/logger"
)

var (
	cfgFile   string
	serverURL string
	outputFmt string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "Notekeeper - клиент для личных заметок",
	Long: `Notekeeper - консольный клиент сервера заметок.

Заметка состоит из заголовка и списка пунктов. После входа токен
сохраняется в ~/.notekeeper/token и используется для всех операций.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Проверить доступность сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		if err := app.CheckConnection(cmd.Context()); err != nil {
			return err
		}

		types.Printer(cmd, app).Success("Сервер %s доступен", app.Config().BaseURL())
		return nil
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log := logger.NewWithLevel(cfg.Env, level)

	app, err := client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(types.WithApp(cmd.Context(), app))
	return nil
}

func loadConfig() (*config.Config, error) {
	v := viper.GetViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".notekeeper"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// флаги важнее файла и окружения
	if serverURL != "" {
		v.Set("SERVER_ADDRESS", serverURL)
	}
	if outputFmt != "" {
		v.Set("OUTPUT", outputFmt)
	}

	return config.Load(v)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.notekeeper/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "адрес сервера (SERVER_ADDRESS)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "формат вывода: text, json, yaml (OUTPUT)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(notes.NotesCmd)
}
