package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"
	"notekeeper/internal/app/server/config"
)

// New создает логгер в зависимости от окружения:
// local - цветной вывод, dev - JSON с debug, prod - JSON с info.
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel как New, но level (debug/info/warn/error) перекрывает уровень окружения.
func NewWithLevel(env, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(parseLevel(level, slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level, slog.LevelDebug)}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level, slog.LevelInfo)}),
		)
	}

	return log
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	return slog.New(opts.NewPrettyHandler(os.Stdout))
}

func parseLevel(level string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// Err - атрибут для ошибки, чтобы не писать везде slog.String("error", err.Error()).
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
