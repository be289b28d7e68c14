package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, owner string) ([]Note, error)
	Create(ctx context.Context, owner string, in Input) (*Note, error)
	Get(ctx context.Context, owner, id string) (*Note, error)
	Replace(ctx context.Context, owner, id string, in Input) (*Note, error)
	Delete(ctx context.Context, owner, id string) (*Note, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, owner string) ([]Note, error) {
	notes, err := s.repo.FindByOwner(ctx, owner)
	if err != nil {
		s.log.Error("failed to list notes", "owner", owner, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if notes == nil {
		notes = []Note{}
	}

	return notes, nil
}

func (s *Service) Create(ctx context.Context, owner string, in Input) (*Note, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	n := &Note{
		Title:      *in.Title,
		Items:      items(in),
		Owner:      owner,
		LastEdited: NewTimestamp(s.now()),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		s.log.Error("failed to create note", "owner", owner, "error", err)
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.Debug("note created", "owner", owner, "id", n.ID)

	return n, nil
}

func (s *Service) Get(ctx context.Context, owner, id string) (*Note, error) {
	n, err := s.repo.FindOne(ctx, owner, id)
	if err != nil {
		return nil, s.wrap("get note", owner, id, err)
	}

	return n, nil
}

// Replace полностью заменяет title и items, владелец и id не меняются.
func (s *Service) Replace(ctx context.Context, owner, id string, in Input) (*Note, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	n := &Note{
		ID:         id,
		Title:      *in.Title,
		Items:      items(in),
		Owner:      owner,
		LastEdited: NewTimestamp(s.now()),
	}

	updated, err := s.repo.FindOneAndReplace(ctx, owner, id, n)
	if err != nil {
		return nil, s.wrap("replace note", owner, id, err)
	}

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, owner, id string) (*Note, error) {
	deleted, err := s.repo.FindOneAndDelete(ctx, owner, id)
	if err != nil {
		return nil, s.wrap("delete note", owner, id, err)
	}

	s.log.Debug("note deleted", "owner", owner, "id", id)

	return deleted, nil
}

func (s *Service) wrap(op, owner, id string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	s.log.Error("note store failure", "op", op, "owner", owner, "id", id, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

func items(in Input) []string {
	out := make([]string, len(*in.Items))
	copy(out, *in.Items)
	return out
}
