// POST   /auth/register   # Регистрация (публичный)
// POST   /auth/login      # Вход (публичный)
// POST   /auth/refresh    # Перевыпуск истекшего токена (токен в заголовке)
// GET    /notes           # Список заметок (auth)
// POST   /notes           # Создать заметку (auth)
// GET    /notes/{id}      # Получить заметку (auth)
// PUT    /notes/{id}      # Заменить заметку (auth)
// DELETE /notes/{id}      # Удалить заметку (auth)
//
// Старые пути /rest/... зарегистрированы как алиасы.

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	accountAPI "notekeeper/internal/app/server/api/http/account"
	healthAPI "notekeeper/internal/app/server/api/http/health"
	"notekeeper/internal/app/server/api/http/middleware"
	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/app/server/api/http/middleware/logger"
	noteAPI "notekeeper/internal/app/server/api/http/note"
	"notekeeper/internal/domain/account"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/token"
)

// Services - доменные сервисы, которые обслуживает HTTP слой.
type Services struct {
	Accounts account.Servicer
	Notes    note.Servicer
	Tokens   token.Servicer
	Ready    healthAPI.ReadyFunc
}

type Handlers struct {
	Health  *healthAPI.Handler
	Account *accountAPI.Handler
	Note    *noteAPI.Handler
}

// New создает *chi.Mux со всеми операциями, зарегистрированными через huma.Register.
func New(svc Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Notekeeper API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	API := humachi.New(mux, config)

	h := handlers(API, svc, log)
	h.Health.SetupRoutes(API)
	h.Account.SetupRoutes(API)
	h.Note.SetupRoutes(API)

	return mux
}

func handlers(api huma.API, svc Services, log *slog.Logger) *Handlers {
	authMW := auth.New(svc.Tokens, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear(), svc.Ready)

	middlewares.Add(loggerMW.Middleware())
	accountHandler := accountAPI.NewHandler(svc.Accounts, log, middlewares.GetAllAndClear())

	// logger стоит первым, чтобы отказы авторизации тоже попадали в лог
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware(api))
	noteHandler := noteAPI.NewHandler(svc.Notes, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Account: accountHandler,
		Note:    noteHandler,
	}
}
