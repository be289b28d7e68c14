package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/account"
)

type accountData struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	Wishlist     []string  `json:"wishlist"`
	CreatedAt    time.Time `json:"created_at"`
}

type AccountRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAccountRepository(db *badger.DB, log *slog.Logger) *AccountRepository {
	return &AccountRepository{
		db:  db,
		log: log.With("repository", "account"),
	}
}

// Insert проверяет ключ и пишет в одной транзакции; конкурентная
// регистрация того же имени получает конфликт и на повторе видит занятый ключ.
func (r *AccountRepository) Insert(_ context.Context, acc *account.Account) error {
	wishlist := acc.Wishlist
	if wishlist == nil {
		wishlist = []string{}
	}

	encoded, err := json.Marshal(accountData{
		Username:     acc.Username,
		PasswordHash: acc.PasswordHash,
		Wishlist:     wishlist,
		CreatedAt:    acc.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal account: %w", err)
	}

	key := accountKey(acc.Username)
	err = update(r.db, func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		switch {
		case err == nil:
			return account.ErrUsernameTaken
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		return txn.Set(key, encoded)
	})
	if err != nil {
		if errors.Is(err, account.ErrUsernameTaken) {
			return account.ErrUsernameTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}

	return nil
}

func (r *AccountRepository) FindByUsername(_ context.Context, username string) (*account.Account, error) {
	var data accountData
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(accountKey(username))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &data)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, account.ErrNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &account.Account{
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Wishlist:     data.Wishlist,
		CreatedAt:    data.CreatedAt,
	}, nil
}
