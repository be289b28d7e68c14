package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/infrastructure/migration"
)

type Storage struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New открывает пул соединений и применяет миграции схемы.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DB.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mg := migration.NewMigration(cfg.DB, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return &Storage{pool: pool, log: log}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) Accounts() *AccountRepository {
	return NewAccountRepository(s.pool, s.log)
}

func (s *Storage) Notes() *NoteRepository {
	return NewNoteRepository(s.pool, s.log)
}
