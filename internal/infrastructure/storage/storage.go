package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/domain/account"
	"notekeeper/internal/domain/note"
	"notekeeper/internal/infrastructure/storage/badger"
	"notekeeper/internal/infrastructure/storage/postgres"
)

// Storage - хранилище документов, выбранное STORAGE_DRIVER.
type Storage struct {
	Accounts account.Repository
	Notes    note.Repository

	closer func() error
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pg, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("postgres storage: %w", err)
		}
		return &Storage{Accounts: pg.Accounts(), Notes: pg.Notes(), closer: pg.Close}, nil

	case config.DriverBadger:
		bg, err := badger.New(cfg.Storage.BadgerPath, log)
		if err != nil {
			return nil, fmt.Errorf("badger storage: %w", err)
		}
		return FromBadger(bg), nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Storage.Driver)
	}
}

func FromBadger(bg *badger.Storage) *Storage {
	return &Storage{Accounts: bg.Accounts(), Notes: bg.Notes(), closer: bg.Close}
}

func (s *Storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
