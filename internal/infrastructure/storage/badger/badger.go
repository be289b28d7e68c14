// Package badger - встраиваемое хранилище документов на BadgerDB.
// Аккаунты лежат под ключом account/<username>, заметки под note/<hex(owner)>/<id>,
// поэтому чужая заметка по ключу владельца просто не находится.
package badger

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"golang.org/x/exp/slog"
)

const (
	accountPrefix = "account/"
	notePrefix    = "note/"

	maxTxnRetries = 10
)

type Storage struct {
	db  *badger.DB
	log *slog.Logger
}

func New(path string, log *slog.Logger) (*Storage, error) {
	return open(badger.DefaultOptions(path), log)
}

// NewInMemory открывает БД без диска (тесты, локальные прогоны).
func NewInMemory(log *slog.Logger) (*Storage, error) {
	return open(badger.DefaultOptions("").WithInMemory(true), log)
}

func open(opts badger.Options, log *slog.Logger) (*Storage, error) {
	log = log.With("component", "badger")

	db, err := badger.Open(opts.WithLogger(&logAdapter{log: log}))
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Accounts() *AccountRepository {
	return NewAccountRepository(s.db, s.log)
}

func (s *Storage) Notes() *NoteRepository {
	return NewNoteRepository(s.db, s.log)
}

// update выполняет fn в одной транзакции и повторяет ее при конфликте SSI.
func update(db *badger.DB, fn func(txn *badger.Txn) error) error {
	var err error
	for i := 0; i < maxTxnRetries; i++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("transaction retries exhausted: %w", err)
}

func accountKey(username string) []byte {
	return []byte(accountPrefix + username)
}

func ownerPrefix(owner string) []byte {
	return []byte(notePrefix + hex.EncodeToString([]byte(owner)) + "/")
}

func noteKey(owner, id string) []byte {
	return append(ownerPrefix(owner), id...)
}

type logAdapter struct {
	log *slog.Logger
}

func (l *logAdapter) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *logAdapter) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}
