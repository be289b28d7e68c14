// Package credential хэширует и проверяет пароли пользователей.
package credential

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLen - bcrypt учитывает только первые 72 байта.
const MaxPasswordLen = 72

var ErrPasswordTooLong = errors.New("password is too long")

type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// Bcrypt - соль генерируется на каждый вызов и хранится внутри хэша.
type Bcrypt struct {
	cost int
}

func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	if len(password) > MaxPasswordLen {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hash), nil
}

// Verify never fails loudly: malformed hashes simply don't match.
// Пароли длиннее 72 байт не совпадают ни с одним хэшем, иначе bcrypt
// сравнил бы только их префикс.
func (b *Bcrypt) Verify(password, hash string) bool {
	if len(password) > MaxPasswordLen {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
