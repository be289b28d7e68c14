package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/account"
	"notekeeper/internal/domain/token"
	"notekeeper/internal/utils/logger"
)

type Handler struct {
	service    account.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service account.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.refreshOp(), h.refresh)

	huma.Register(api, legacy(h.registerOp(), "/rest/register"), h.register)
	huma.Register(api, legacy(h.loginOp(), "/rest/login"), h.login)
	huma.Register(api, legacy(h.refreshOp(), "/rest/refresh"), h.refresh)
}

func (h *Handler) register(ctx context.Context, input *credentialsInput) (*tokenOutput, error) {
	tok, err := h.service.Register(ctx, input.Body)
	if err != nil {
		return nil, h.toHTTPError(err, username(input.Body))
	}

	return &tokenOutput{
		Body: account.TokenResponse{
			Message: fmt.Sprintf("New user '%s' created!", username(input.Body)),
			Token:   tok,
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *credentialsInput) (*tokenOutput, error) {
	tok, err := h.service.Login(ctx, input.Body)
	if err != nil {
		return nil, h.toHTTPError(err, username(input.Body))
	}

	return &tokenOutput{
		Body: account.TokenResponse{Message: "Login successful!", Token: tok},
	}, nil
}

func (h *Handler) refresh(ctx context.Context, input *refreshInput) (*tokenOutput, error) {
	old := auth.ExtractToken(input.Authorization)
	if old == "" {
		return nil, huma.Error401Unauthorized("Token is missing!")
	}

	var requested string
	if input.Body != nil {
		requested = input.Body.Username
	}

	tok, err := h.service.Refresh(ctx, old, requested)
	if err != nil {
		return nil, h.toHTTPError(err, requested)
	}

	return &tokenOutput{
		Body: account.TokenResponse{Message: "Refresh successful!", Token: tok},
	}, nil
}

func (h *Handler) toHTTPError(err error, username string) error {
	switch {
	case errors.Is(err, account.ErrMissingFields):
		return huma.Error400BadRequest("Username or password field is missing from request!")
	case errors.Is(err, account.ErrBlankFields):
		return huma.Error400BadRequest("Username or password is blank!")
	case errors.Is(err, account.ErrPasswordTooLong):
		return huma.Error400BadRequest("Password must be at most 72 bytes!")
	case errors.Is(err, account.ErrUsernameTaken):
		return huma.Error409Conflict(fmt.Sprintf("User '%s' already exists!", username))
	case errors.Is(err, account.ErrUnknownUser):
		return huma.Error401Unauthorized(fmt.Sprintf("User '%s' does not exist!", username))
	case errors.Is(err, account.ErrWrongPassword):
		return huma.Error401Unauthorized("Incorrect password! Please try again.")
	case errors.Is(err, account.ErrSubjectMismatch):
		return huma.Error401Unauthorized("Token does not belong to this user!")
	case errors.Is(err, token.ErrNotExpired):
		return huma.Error400BadRequest("Token is not expired yet!")
	case errors.Is(err, token.ErrMalformed), errors.Is(err, token.ErrBadSignature):
		return huma.Error401Unauthorized("Token is invalid!")
	default:
		h.log.Error("account request failed", logger.Err(err))
		return huma.Error500InternalServerError("internal error")
	}
}

func username(c account.Credentials) string {
	if c.Username == nil {
		return ""
	}
	return *c.Username
}
