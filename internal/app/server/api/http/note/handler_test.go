package note

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notekeeper/internal/app/server/api/http/middleware/auth"
	"notekeeper/internal/domain/note"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, owner string) ([]note.Note, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, owner string, in note.Input) (*note.Note, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, owner, id string) (*note.Note, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Replace(ctx context.Context, owner, id string, in note.Input) (*note.Note, error) {
	args := m.Called(ctx, owner, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, owner, id string) (*note.Note, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func groceries() *note.Note {
	return &note.Note{
		ID:         "7a1c3a52-2b2e-4a4f-9d59-8a3b8f0e2c11",
		Title:      "Groceries",
		Items:      []string{"milk"},
		Owner:      "alice",
		LastEdited: note.NewTimestamp(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestHandler_RequiresSubject(t *testing.T) {
	h := NewHandler(new(MockService), slog.Default(), nil)
	ctx := context.Background()

	_, err := h.list(ctx, &struct{}{})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = h.create(ctx, &writeInput{Body: note.NewInput("t", nil)})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = h.get(ctx, &idInput{ID: "x"})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = h.replace(ctx, &replaceInput{ID: "x"})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err = h.delete(ctx, &idInput{ID: "x"})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithSubject(context.Background(), "alice")

	svc.On("List", mock.Anything, "alice").Return([]note.Note{*groceries()}, nil)

	out, err := h.list(ctx, &struct{}{})
	require.NoError(t, err)
	assert.Len(t, out.Body.Notes, 1)
	assert.Equal(t, "Groceries", out.Body.Notes[0].Title)
	svc.AssertExpectations(t)
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithSubject(context.Background(), "alice")

	in := note.NewInput("Groceries", []string{"milk"})
	svc.On("Create", mock.Anything, "alice", in).Return(groceries(), nil)

	out, err := h.create(ctx, &writeInput{Body: in})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Body.Owner)

	svc.On("Create", mock.Anything, "alice", note.Input{}).Return(nil, note.ErrInvalidInput)
	_, err = h.create(ctx, &writeInput{})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}

func TestHandler_NotFoundAndFailures(t *testing.T) {
	id := groceries().ID
	ctx := auth.WithSubject(context.Background(), "bob")

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
	}{
		{name: "not found", svcErr: note.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store failure", svcErr: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			h := NewHandler(svc, slog.Default(), nil)

			svc.On("Get", mock.Anything, "bob", id).Return(nil, tt.svcErr)
			svc.On("Replace", mock.Anything, "bob", id, mock.Anything).Return(nil, tt.svcErr)
			svc.On("Delete", mock.Anything, "bob", id).Return(nil, tt.svcErr)

			_, err := h.get(ctx, &idInput{ID: id})
			assert.Equal(t, tt.wantStatus, statusOf(t, err))

			_, err = h.replace(ctx, &replaceInput{ID: id, Body: note.NewInput("x", []string{})})
			assert.Equal(t, tt.wantStatus, statusOf(t, err))

			_, err = h.delete(ctx, &idInput{ID: id})
			assert.Equal(t, tt.wantStatus, statusOf(t, err))
			assert.NotContains(t, err.Error(), "connection reset")

			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_Delete_ReturnsDeletedNote(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithSubject(context.Background(), "alice")

	n := groceries()
	svc.On("Delete", mock.Anything, "alice", n.ID).Return(n, nil)

	out, err := h.delete(ctx, &idInput{ID: n.ID})
	require.NoError(t, err)
	assert.Equal(t, n, out.Body)
}
