package note

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/utils/logger"
)

type Handler struct {
	service    note.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service note.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

// SetupRoutes регистрирует операции на /notes и на старом префиксе /rest/notes.
func (h *Handler) SetupRoutes(api huma.API) {
	grp := huma.NewGroup(api, "", "/rest")

	huma.Register(grp, h.listOp(), h.list)
	huma.Register(grp, h.createOp(), h.create)
	huma.Register(grp, h.getOp(), h.get)
	huma.Register(grp, h.replaceOp(), h.replace)
	huma.Register(grp, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	owner, ok := auth.GetSubject(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Token is missing!")
	}

	notes, err := h.service.List(ctx, owner)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &listOutput{Body: note.ListResponse{Notes: notes}}, nil
}

func (h *Handler) create(ctx context.Context, input *writeInput) (*noteOutput, error) {
	owner, ok := auth.GetSubject(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Token is missing!")
	}

	n, err := h.service.Create(ctx, owner, input.Body)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &noteOutput{Body: n}, nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*noteOutput, error) {
	owner, ok := auth.GetSubject(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Token is missing!")
	}

	n, err := h.service.Get(ctx, owner, input.ID)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &noteOutput{Body: n}, nil
}

func (h *Handler) replace(ctx context.Context, input *replaceInput) (*noteOutput, error) {
	owner, ok := auth.GetSubject(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Token is missing!")
	}

	n, err := h.service.Replace(ctx, owner, input.ID, input.Body)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &noteOutput{Body: n}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*noteOutput, error) {
	owner, ok := auth.GetSubject(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Token is missing!")
	}

	n, err := h.service.Delete(ctx, owner, input.ID)
	if err != nil {
		return nil, h.toHTTPError(err)
	}

	return &noteOutput{Body: n}, nil
}

func (h *Handler) toHTTPError(err error) error {
	switch {
	case errors.Is(err, note.ErrNotFound):
		return huma.Error404NotFound("id does not exist")
	case errors.Is(err, note.ErrInvalidInput):
		return huma.Error400BadRequest("Title and items are required!")
	default:
		h.log.Error("note request failed", logger.Err(err))
		return huma.Error500InternalServerError("internal error")
	}
}
