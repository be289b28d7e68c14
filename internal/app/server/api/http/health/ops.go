package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Health check endpoint",
		Description: "Returns the health status of the service",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) livezOp() huma.Operation {
	return huma.Operation{
		OperationID: "livez",
		Method:      http.MethodGet,
		Path:        "/livez",
		Summary:     "Liveness probe",
		Tags:        []string{"health"},
	}
}

func (h *Handler) readyzOp() huma.Operation {
	return huma.Operation{
		OperationID: "readyz",
		Method:      http.MethodGet,
		Path:        "/readyz",
		Summary:     "Readiness probe",
		Description: "Returns 503 until the server is started and after shutdown begins",
		Tags:        []string{"health"},
	}
}
