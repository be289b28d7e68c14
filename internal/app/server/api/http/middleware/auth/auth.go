package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/token"
)

var (
	ErrMissing = errors.New("token is missing")
	ErrInvalid = errors.New("token is invalid")
	ErrExpired = errors.New("token is expired")
)

// Тексты ответов 401, которые ждут существующие клиенты.
var messages = map[error]string{
	ErrMissing: "Token is missing!",
	ErrInvalid: "Token is invalid!",
	ErrExpired: "Token is expired!",
}

const bearerPrefix = "Bearer "

type Auth struct {
	tokens token.Servicer
	log    *slog.Logger
}

func New(tokens token.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		log:    log.With("component", "auth_middleware"),
	}
}

type contextKey string

const SubjectKey contextKey = "subject"

// Authorize проверяет значение заголовка Authorization и возвращает subject токена.
// Принимается как "Bearer <token>", так и голый токен.
func (a *Auth) Authorize(header string) (string, error) {
	raw := ExtractToken(header)
	if raw == "" {
		return "", ErrMissing
	}

	claims, err := a.tokens.Verify(raw)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}

	return claims.Subject, nil
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context)).
// При ошибке отвечает 401 и не вызывает обработчик.
func (a *Auth) Middleware(api huma.API) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		subject, err := a.Authorize(ctx.Header("Authorization"))
		if err != nil {
			a.log.Debug("unauthorized request", "path", ctx.URL().Path, "reason", err)
			if werr := huma.WriteErr(api, ctx, http.StatusUnauthorized, messages[err]); werr != nil {
				a.log.Error("failed to write auth error", "error", werr)
			}
			return
		}

		next(huma.WithContext(ctx, WithSubject(ctx.Context(), subject)))
	}
}

// ExtractToken снимает необязательный префикс "Bearer ".
func ExtractToken(header string) string {
	raw := strings.TrimSpace(header)
	scheme := strings.TrimSpace(bearerPrefix)
	if len(raw) >= len(scheme) && strings.EqualFold(raw[:len(scheme)], scheme) {
		rest := raw[len(scheme):]
		// "Bearer" без токена или с пробелом после схемы, но не "Bearerxyz"
		if rest == "" || rest[0] == ' ' || rest[0] == '\t' {
			raw = rest
		}
	}
	return strings.TrimSpace(raw)
}

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectKey, subject)
}

func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectKey).(string)
	return subject, ok && subject != ""
}
