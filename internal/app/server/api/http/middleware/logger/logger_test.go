package logger

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestLogger_Middleware(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, api := humatest.New(t)
	mw := New(log).Middleware()

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{mw},
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		return nil, nil
	})
	huma.Register(api, huma.Operation{
		OperationID: "missing",
		Method:      http.MethodGet,
		Path:        "/missing",
		Middlewares: huma.Middlewares{mw},
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		return nil, huma.Error404NotFound("nope")
	})

	resp := api.Get("/ping", "Authorization: Bearer secret-token")
	assert.Equal(t, http.StatusNoContent, resp.Code)

	out := buf.String()
	assert.Contains(t, out, `"msg":"HTTP request"`)
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"path":"/ping"`)
	assert.Contains(t, out, `"method":"GET"`)
	assert.NotContains(t, out, "secret-token")

	buf.Reset()
	api.Get("/missing")
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"status":404`)
}
