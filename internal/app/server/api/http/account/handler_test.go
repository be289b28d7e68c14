package account

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/account"
	"notekeeper/internal/domain/token"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, c account.Credentials) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockService) Login(ctx context.Context, c account.Credentials) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockService) Refresh(ctx context.Context, oldToken, username string) (string, error) {
	args := m.Called(ctx, oldToken, username)
	return args.String(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc account.Servicer) humatest.TestAPI {
	_, api := humatest.New(t)
	NewHandler(svc, slog.Default(), nil).SetupRoutes(api)
	return api
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       map[string]any{"username": "alice", "password": "pw123"},
			wantStatus: http.StatusCreated,
			wantBody:   "New user 'alice' created!",
		},
		{
			name:       "taken",
			body:       map[string]any{"username": "alice", "password": "pw123"},
			svcErr:     account.ErrUsernameTaken,
			wantStatus: http.StatusConflict,
			wantBody:   "User 'alice' already exists!",
		},
		{
			name:       "missing field",
			body:       map[string]any{"username": "alice"},
			svcErr:     account.ErrMissingFields,
			wantStatus: http.StatusBadRequest,
			wantBody:   "field is missing",
		},
		{
			name:       "blank field",
			body:       map[string]any{"username": "", "password": "pw"},
			svcErr:     account.ErrBlankFields,
			wantStatus: http.StatusBadRequest,
			wantBody:   "is blank",
		},
		{
			name:       "store failure is hidden",
			body:       map[string]any{"username": "alice", "password": "pw123"},
			svcErr:     errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tok := ""
			if tt.svcErr == nil {
				tok = "signed.jwt.token"
			}
			svc.On("Register", mock.Anything, mock.Anything).Return(tok, tt.svcErr)

			resp := newTestAPI(t, svc).Post("/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			assert.NotContains(t, resp.Body.String(), "connection refused")
			if tt.svcErr == nil {
				assert.Contains(t, resp.Body.String(), `"token":"signed.jwt.token"`)
			}
		})
	}
}

func TestHandler_Register_PassesNilForAbsentFields(t *testing.T) {
	svc := new(MockService)
	svc.On("Register", mock.Anything, mock.MatchedBy(func(c account.Credentials) bool {
		return c.Username != nil && *c.Username == "alice" && c.Password == nil
	})).Return("", account.ErrMissingFields)

	resp := newTestAPI(t, svc).Post("/auth/register", map[string]any{"username": "alice"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantBody   string
	}{
		{name: "success", wantStatus: http.StatusOK, wantBody: "Login successful!"},
		{name: "unknown user", svcErr: account.ErrUnknownUser, wantStatus: http.StatusUnauthorized, wantBody: "User 'alice' does not exist!"},
		{name: "wrong password", svcErr: account.ErrWrongPassword, wantStatus: http.StatusUnauthorized, wantBody: "Incorrect password!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Login", mock.Anything, mock.Anything).Return("tok", tt.svcErr)

			api := newTestAPI(t, svc)
			for _, path := range []string{"/auth/login", "/rest/login"} {
				resp := api.Post(path, map[string]any{"username": "alice", "password": "pw123"})
				assert.Equal(t, tt.wantStatus, resp.Code, path)
				assert.Contains(t, resp.Body.String(), tt.wantBody, path)
			}
		})
	}
}

func TestHandler_Refresh(t *testing.T) {
	tests := []struct {
		name       string
		headers    []any
		body       []any
		setupMock  func(m *MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name:    "bearer header without body",
			headers: []any{"Authorization: Bearer old.token"},
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "old.token", "").Return("new.token", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"new.token"`,
		},
		{
			name:    "raw header with username",
			headers: []any{"Authorization: old.token"},
			body:    []any{map[string]any{"username": "alice"}},
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "old.token", "alice").Return("new.token", nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "Refresh successful!",
		},
		{
			name:       "missing header",
			setupMock:  func(m *MockService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token is missing!",
		},
		{
			name:    "token still valid",
			headers: []any{"Authorization: old.token"},
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "old.token", "").Return("", token.ErrNotExpired)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "not expired",
		},
		{
			name:    "bad signature",
			headers: []any{"Authorization: old.token"},
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "old.token", "").Return("", token.ErrBadSignature)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token is invalid!",
		},
		{
			name:    "subject mismatch",
			headers: []any{"Authorization: old.token"},
			body:    []any{map[string]any{"username": "bob"}},
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "old.token", "bob").Return("", account.ErrSubjectMismatch)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)

			args := append(append([]any{}, tt.headers...), tt.body...)
			resp := newTestAPI(t, svc).Post("/auth/refresh", args...)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_toHTTPError(t *testing.T) {
	h := NewHandler(nil, slog.Default(), nil)

	tests := []struct {
		err  error
		want int
	}{
		{err: account.ErrPasswordTooLong, want: http.StatusBadRequest},
		{err: account.ErrUsernameTaken, want: http.StatusConflict},
		{err: token.ErrMalformed, want: http.StatusUnauthorized},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			var se huma.StatusError
			require.ErrorAs(t, h.toHTTPError(tt.err, "alice"), &se)
			assert.Equal(t, tt.want, se.GetStatus())
		})
	}
}
