package note

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearerSecurity = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-list",
		Method:      http.MethodGet,
		Path:        "/notes",
		Summary:     "Список заметок пользователя",
		Tags:        []string{"notes"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notes-create",
		Method:        http.MethodPost,
		Path:          "/notes",
		Summary:       "Создать заметку",
		Tags:          []string{"notes"},
		Security:      bearerSecurity,
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusUnauthorized},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-get",
		Method:      http.MethodGet,
		Path:        "/notes/{id}",
		Summary:     "Получить заметку",
		Tags:        []string{"notes"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) replaceOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-replace",
		Method:      http.MethodPut,
		Path:        "/notes/{id}",
		Summary:     "Заменить заголовок и пункты заметки",
		Tags:        []string{"notes"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-delete",
		Method:      http.MethodDelete,
		Path:        "/notes/{id}",
		Summary:     "Удалить заметку",
		Description: "Возвращает удаленную заметку",
		Tags:        []string{"notes"},
		Security:    bearerSecurity,
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
		Middlewares: h.middleware,
	}
}
