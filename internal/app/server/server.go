package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/atomic"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api"
	"notekeeper/internal/app/server/config"
	"notekeeper/internal/domain/account"
	"notekeeper/internal/domain/credential"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/domain/token"
	"notekeeper/internal/infrastructure/storage"
	"notekeeper/internal/utils/logger"
)

type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	isReady atomic.Bool

	store *storage.Storage
	srv   *http.Server
}

// New открывает хранилище по конфигурации и собирает HTTP сервер.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Server, error) {
	store, err := storage.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return NewWithStorage(cfg, store, log), nil
}

// NewWithStorage собирает сервер поверх уже открытого хранилища; Server становится его владельцем.
func NewWithStorage(cfg *config.Config, store *storage.Storage, log *slog.Logger) *Server {
	s := &Server{
		cfg:   cfg,
		log:   log.With("component", "server"),
		store: store,
	}

	tokens := token.NewService([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	hasher := credential.NewBcrypt(cfg.Auth.BcryptCost)

	mux := api.New(api.Services{
		Accounts: account.NewService(store.Accounts, hasher, tokens, account.NewFieldValidator(), log),
		Notes:    note.NewService(store.Notes, log),
		Tokens:   tokens,
		Ready:    s.isReady.Load,
	}, log)

	s.srv = &http.Server{
		Addr:         cfg.Server.RunAddress,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Ready() bool {
	return s.isReady.Load()
}

// Run слушает адрес из конфигурации до отмены ctx, затем корректно останавливается.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		_ = s.store.Close()
		return fmt.Errorf("listen %s: %w", s.srv.Addr, err)
	}

	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", "address", ln.Addr().String(), "storage", s.cfg.Storage.Driver)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	s.isReady.Store(true)

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		if serveErr != nil {
			s.log.Error("HTTP server failed", "error", serveErr)
		}
	}

	return errors.Join(serveErr, s.shutdown())
}

func (s *Server) shutdown() error {
	s.isReady.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		s.log.Error("graceful HTTP server shutdown failed", logger.Err(err))
		errs = append(errs, fmt.Errorf("shutdown: %w", err))
	} else {
		s.log.Info("HTTP server gracefully stopped")
	}

	if err := s.store.Close(); err != nil {
		s.log.Error("failed to close storage", logger.Err(err))
		errs = append(errs, fmt.Errorf("close storage: %w", err))
	}

	return errors.Join(errs...)
}
