package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

const noteColumns = `id::text, owner, title, items, last_edited`

type NoteRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewNoteRepository(pool *pgxpool.Pool, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		pool: pool,
		log:  log.With("component", "note_repository"),
	}
}

func (r *NoteRepository) Insert(ctx context.Context, n *note.Note) error {
	id := uuid.New()

	const query = `
		INSERT INTO notes (id, owner, title, items, last_edited)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.pool.Exec(ctx, query, id, n.Owner, n.Title, n.Items, n.LastEdited.Time); err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	n.ID = id.String()

	return nil
}

func (r *NoteRepository) FindByOwner(ctx context.Context, owner string) ([]note.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE owner = $1`

	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := []note.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) FindOne(ctx context.Context, owner, id string) (*note.Note, error) {
	noteID, err := uuid.Parse(id)
	if err != nil {
		return nil, note.ErrNotFound
	}

	query := `SELECT ` + noteColumns + ` FROM notes WHERE id = $1 AND owner = $2`

	return r.one(ctx, "get note", query, noteID, owner)
}

// FindOneAndReplace - один UPDATE с фильтром по (id, owner), без отдельного чтения.
func (r *NoteRepository) FindOneAndReplace(ctx context.Context, owner, id string, n *note.Note) (*note.Note, error) {
	noteID, err := uuid.Parse(id)
	if err != nil {
		return nil, note.ErrNotFound
	}

	query := `
		UPDATE notes SET title = $3, items = $4, last_edited = $5
		WHERE id = $1 AND owner = $2
		RETURNING ` + noteColumns

	return r.one(ctx, "replace note", query, noteID, owner, n.Title, n.Items, n.LastEdited.Time)
}

func (r *NoteRepository) FindOneAndDelete(ctx context.Context, owner, id string) (*note.Note, error) {
	noteID, err := uuid.Parse(id)
	if err != nil {
		return nil, note.ErrNotFound
	}

	query := `DELETE FROM notes WHERE id = $1 AND owner = $2 RETURNING ` + noteColumns

	return r.one(ctx, "delete note", query, noteID, owner)
}

func (r *NoteRepository) one(ctx context.Context, op, query string, args ...any) (*note.Note, error) {
	n, err := scanNote(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, note.ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func scanNote(row pgx.Row) (*note.Note, error) {
	var (
		n          note.Note
		lastEdited time.Time
	)
	if err := row.Scan(&n.ID, &n.Owner, &n.Title, &n.Items, &lastEdited); err != nil {
		return nil, err
	}
	if n.Items == nil {
		n.Items = []string{}
	}
	n.LastEdited = note.NewTimestamp(lastEdited)

	return &n, nil
}
