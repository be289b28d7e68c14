package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/credential"
	"notekeeper/internal/domain/token"
)

type Servicer interface {
	Register(ctx context.Context, c Credentials) (string, error)
	Login(ctx context.Context, c Credentials) (string, error)
	Refresh(ctx context.Context, oldToken, username string) (string, error)
}

type Service struct {
	repo      Repository
	hasher    credential.Hasher
	tokens    token.Servicer
	validator Validator
	log       *slog.Logger
	now       func() time.Time
}

func NewService(repo Repository, hasher credential.Hasher, tokens token.Servicer, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		tokens:    tokens,
		validator: validator,
		log:       log.With("component", "account_service"),
		now:       time.Now,
	}
}

// Register создает аккаунт и сразу выдает токен для нового пользователя.
func (s *Service) Register(ctx context.Context, c Credentials) (string, error) {
	username, password, err := s.validator.Validate(c)
	if err != nil {
		s.log.Debug("validation failed", "error", err)
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, credential.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}

	acc := &Account{
		Username:     username,
		PasswordHash: hash,
		Wishlist:     []string{},
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, acc); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			s.log.Debug("username taken", "username", username)
			return "", ErrUsernameTaken
		}
		s.log.Error("failed to create account", "username", username, "error", err)
		return "", fmt.Errorf("create account: %w", err)
	}

	tok, err := s.tokens.Mint(username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("account registered", "username", username)

	return tok, nil
}

func (s *Service) Login(ctx context.Context, c Credentials) (string, error) {
	username, password, err := s.validator.Validate(c)
	if err != nil {
		return "", err
	}

	acc, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrUnknownUser
		}
		s.log.Error("failed to find account", "username", username, "error", err)
		return "", fmt.Errorf("find account: %w", err)
	}

	if !s.hasher.Verify(password, acc.PasswordHash) {
		return "", ErrWrongPassword
	}

	tok, err := s.tokens.Mint(acc.Username)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return tok, nil
}

// Refresh перевыпускает только истекший токен. Если username передан,
// он обязан совпадать с subject старого токена.
func (s *Service) Refresh(_ context.Context, oldToken, username string) (string, error) {
	if username != "" {
		claims, _ := s.tokens.Verify(oldToken)
		if claims != nil && claims.Subject != username {
			return "", ErrSubjectMismatch
		}
	}

	tok, err := s.tokens.Refresh(oldToken)
	if err != nil {
		return "", err
	}

	return tok, nil
}
