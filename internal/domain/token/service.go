// Package token выпускает и проверяет подписанные JWT сессии (HS256).
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL - время жизни токена, если в конфигурации не задано иное.
const DefaultTTL = 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
}

type Servicer interface {
	Issue(subject string, ttl time.Duration) (string, error)
	Mint(subject string) (string, error)
	Verify(token string) (*Claims, error)
	Refresh(old string) (string, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Service)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(secret []byte, ttl time.Duration, opts ...Option) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	s := &Service{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue подписывает {sub, iat, exp = now + ttl}.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Mint выпускает токен с TTL из конфигурации.
func (s *Service) Mint(subject string) (string, error) {
	return s.Issue(subject, s.ttl)
}

// Verify returns ErrMalformed, ErrBadSignature or ErrExpired on failure.
// For ErrExpired the parsed claims are returned as well: the signature has
// already been checked at that point.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			if claims.Subject == "" {
				return nil, ErrMalformed
			}
			return claims, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}

	if claims.Subject == "" {
		return nil, ErrMalformed
	}

	return claims, nil
}

// Refresh перевыпускает токен только для истекшего, но корректно подписанного токена.
func (s *Service) Refresh(old string) (string, error) {
	claims, err := s.Verify(old)
	if err == nil {
		return "", ErrNotExpired
	}
	if !errors.Is(err, ErrExpired) {
		return "", err
	}

	return s.Mint(claims.Subject)
}
