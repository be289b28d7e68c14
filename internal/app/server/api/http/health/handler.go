package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// ReadyFunc сообщает, готов ли сервер принимать трафик.
type ReadyFunc func() bool

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
	ready      ReadyFunc
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares, ready ReadyFunc) *Handler {
	if ready == nil {
		ready = func() bool { return true }
	}
	return &Handler{
		log:        log,
		middleware: middleware,
		ready:      ready,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.livezOp(), h.livez)
	huma.Register(api, h.readyzOp(), h.readyz)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{Body: Response{Status: "OK", Ready: h.ready()}}, nil
}

func (h *Handler) livez(_ context.Context, _ *Input) (*Output, error) {
	return &Output{Body: Response{Status: "OK", Ready: h.ready()}}, nil
}

func (h *Handler) readyz(_ context.Context, _ *Input) (*Output, error) {
	if !h.ready() {
		return nil, huma.Error503ServiceUnavailable("server is not ready")
	}

	return &Output{Body: Response{Status: "OK", Ready: true}}, nil
}
