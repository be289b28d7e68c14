package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"notekeeper/internal/domain/note"
)

// noteData хранит last_edited с полной точностью, в отличие от JSON ответа API.
type noteData struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Items      []string  `json:"items"`
	Owner      string    `json:"owner"`
	LastEdited time.Time `json:"last_edited"`
}

func fromModel(n *note.Note) noteData {
	items := n.Items
	if items == nil {
		items = []string{}
	}
	return noteData{
		ID:         n.ID,
		Title:      n.Title,
		Items:      items,
		Owner:      n.Owner,
		LastEdited: n.LastEdited.Time,
	}
}

func (d noteData) toModel() *note.Note {
	return &note.Note{
		ID:         d.ID,
		Title:      d.Title,
		Items:      d.Items,
		Owner:      d.Owner,
		LastEdited: note.NewTimestamp(d.LastEdited),
	}
}

type NoteRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNoteRepository(db *badger.DB, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		db:  db,
		log: log.With("repository", "note"),
	}
}

func (r *NoteRepository) Insert(_ context.Context, n *note.Note) error {
	data := fromModel(n)
	data.ID = uuid.NewString()

	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal note: %w", err)
	}

	err = update(r.db, func(txn *badger.Txn) error {
		return txn.Set(noteKey(data.Owner, data.ID), encoded)
	})
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	n.ID = data.ID

	return nil
}

func (r *NoteRepository) FindByOwner(_ context.Context, owner string) ([]note.Note, error) {
	notes := []note.Note{}
	prefix := ownerPrefix(owner)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var d noteData
				if err := json.Unmarshal(val, &d); err != nil {
					return err
				}
				notes = append(notes, *d.toModel())
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *NoteRepository) FindOne(_ context.Context, owner, id string) (*note.Note, error) {
	id, ok := normalizeID(id)
	if !ok {
		return nil, note.ErrNotFound
	}

	var found *note.Note
	err := r.db.View(func(txn *badger.Txn) error {
		d, err := getNote(txn, owner, id)
		if err != nil {
			return err
		}
		found = d.toModel()
		return nil
	})
	if err != nil {
		return nil, mapErr("get note", err)
	}

	return found, nil
}

// FindOneAndReplace читает и перезаписывает ключ в одной транзакции.
func (r *NoteRepository) FindOneAndReplace(_ context.Context, owner, id string, n *note.Note) (*note.Note, error) {
	id, ok := normalizeID(id)
	if !ok {
		return nil, note.ErrNotFound
	}

	var updated *note.Note
	err := update(r.db, func(txn *badger.Txn) error {
		prev, err := getNote(txn, owner, id)
		if err != nil {
			return err
		}

		next := fromModel(n)
		next.ID = prev.ID
		next.Owner = prev.Owner

		encoded, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("marshal note: %w", err)
		}
		if err := txn.Set(noteKey(owner, id), encoded); err != nil {
			return err
		}
		updated = next.toModel()
		return nil
	})
	if err != nil {
		return nil, mapErr("replace note", err)
	}

	return updated, nil
}

func (r *NoteRepository) FindOneAndDelete(_ context.Context, owner, id string) (*note.Note, error) {
	id, ok := normalizeID(id)
	if !ok {
		return nil, note.ErrNotFound
	}

	var deleted *note.Note
	err := update(r.db, func(txn *badger.Txn) error {
		prev, err := getNote(txn, owner, id)
		if err != nil {
			return err
		}
		if err := txn.Delete(noteKey(owner, id)); err != nil {
			return err
		}
		deleted = prev.toModel()
		return nil
	})
	if err != nil {
		return nil, mapErr("delete note", err)
	}

	return deleted, nil
}

func getNote(txn *badger.Txn, owner, id string) (noteData, error) {
	var d noteData

	item, err := txn.Get(noteKey(owner, id))
	if err != nil {
		return d, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &d)
	})
	return d, err
}

func mapErr(op string, err error) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return note.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// normalizeID приводит любую запись UUID (верхний регистр, без дефисов,
// в фигурных скобках, urn:uuid:) к канонической, из которой строится ключ.
func normalizeID(id string) (string, bool) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
