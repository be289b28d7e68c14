package account

import (
	"context"
)

type Repository interface {
	// Insert атомарно создает аккаунт; ErrUsernameTaken, если имя уже занято.
	Insert(ctx context.Context, acc *Account) error
	FindByUsername(ctx context.Context, username string) (*Account, error)
}
