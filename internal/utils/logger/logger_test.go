package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"golang.org/x/exp/slog"
	"notekeeper/internal/app/server/config"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog(slog.LevelDebug)
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestNewWithLevel_Override(t *testing.T) {
	ctx := context.Background()

	prodDebug := NewWithLevel(config.EnvProd, "debug")
	assert.True(t, prodDebug.Enabled(ctx, slog.LevelDebug))

	devWarn := NewWithLevel(config.EnvDev, "WARN")
	assert.False(t, devWarn.Enabled(ctx, slog.LevelInfo))
	assert.True(t, devWarn.Enabled(ctx, slog.LevelWarn))

	unknown := NewWithLevel(config.EnvProd, "loud")
	assert.False(t, unknown.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler_Handle(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With("component", "test")

	log.Info("note created", "note_id", "42", Err(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "note created")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"note_id": "42"`)
	assert.Contains(t, out, `"error": "boom"`)
}
