package account

import "time"

type Account struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Wishlist     []string  `json:"wishlist"`
	CreatedAt    time.Time `json:"created_at"`
}
