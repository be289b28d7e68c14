package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/account"
)

type AccountRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewAccountRepository(pool *pgxpool.Pool, log *slog.Logger) *AccountRepository {
	return &AccountRepository{
		pool: pool,
		log:  log.With("component", "account_repository"),
	}
}

// Insert атомарно создает аккаунт, если имя свободно.
// Пустой RETURNING означает, что уникальный ключ уже занят.
func (r *AccountRepository) Insert(ctx context.Context, acc *account.Account) error {
	const query = `
		INSERT INTO accounts (username, password_hash, wishlist, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING
		RETURNING id`

	wishlist := acc.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}

	var id int64
	err := r.pool.QueryRow(ctx, query, acc.Username, acc.PasswordHash, wishlist, acc.CreatedAt).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*account.Account, error) {
	const query = `
		SELECT username, password_hash, wishlist, created_at
		FROM accounts
		WHERE username = $1`

	var acc account.Account
	err := r.pool.QueryRow(ctx, query, username).
		Scan(&acc.Username, &acc.PasswordHash, &acc.Wishlist, &acc.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &acc, nil
}
