package health

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"
	"golang.org/x/exp/slog"
)

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name      string
		ready     bool
		wantReady bool
	}{
		{name: "ready server", ready: true, wantReady: true},
		{name: "starting server still healthy", ready: false, wantReady: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(slog.Default(), huma.Middlewares{}, func() bool { return tt.ready })

			output, err := handler.healthCheck(context.Background(), &Input{})

			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, "OK", output.Body.Status)
			assert.Equal(t, tt.wantReady, output.Body.Ready)
		})
	}
}

func TestNewHandler(t *testing.T) {
	handler := NewHandler(slog.Default(), huma.Middlewares{}, nil)

	assert.NotNil(t, handler)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
	assert.True(t, handler.ready())
}

func TestHandler_Probes(t *testing.T) {
	ready := atomic.NewBool(false)

	_, api := humatest.New(t)
	NewHandler(slog.Default(), nil, ready.Load).SetupRoutes(api)

	assert.Equal(t, http.StatusOK, api.Get("/livez").Code)
	assert.Equal(t, http.StatusServiceUnavailable, api.Get("/readyz").Code)

	ready.Store(true)
	assert.Equal(t, http.StatusOK, api.Get("/readyz").Code)

	resp := api.Get("/api/v1/health")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"OK"`)
}
