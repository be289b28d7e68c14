package account

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-register",
		Method:        http.MethodPost,
		Path:          "/auth/register",
		Summary:       "Регистрация пользователя",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusConflict},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Вход по имени и паролю",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized},
		Middlewares: h.middleware,
	}
}

func (h *Handler) refreshOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-refresh",
		Method:      http.MethodPost,
		Path:        "/auth/refresh",
		Summary:     "Перевыпуск истекшего токена",
		Description: "Принимает только корректно подписанный токен с истекшим сроком действия",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized},
		Middlewares: h.middleware,
	}
}

// legacy - та же операция по старому пути /rest/<name>.
func legacy(op huma.Operation, path string) huma.Operation {
	op.OperationID = "rest-" + op.OperationID
	op.Path = path
	op.Deprecated = true
	return op
}
