package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Драйвер postgres и файловый источник регистрируются через init.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"notekeeper/internal/app/server/config"
)

// Migrator - та часть migrate.Migrate, которая нам нужна.
type Migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
	Close() (error, error)
}

// Engine создает мигратор; в тестах подменяется, чтобы не трогать ФС и БД.
type Engine func(sourceURL, databaseURL string) (Migrator, error)

type Migration struct {
	db     config.DB
	engine Engine
}

func NewMigration(db config.DB, engine Engine) *Migration {
	if engine == nil {
		engine = DefaultEngine
	}
	return &Migration{
		db:     db,
		engine: engine,
	}
}

func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// Up применяет все новые миграции. Отсутствие изменений ошибкой не считается.
func (mg *Migration) Up() error {
	return mg.run(func(m Migrator) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up: %w", err)
		}
		return nil
	})
}

func (mg *Migration) Down() error {
	return mg.run(func(m Migrator) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down: %w", err)
		}
		return nil
	})
}

// Version возвращает текущую версию схемы; 0 - миграции еще не применялись.
func (mg *Migration) Version() (version uint, dirty bool, err error) {
	err = mg.run(func(m Migrator) error {
		v, d, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			return fmt.Errorf("migration version: %w", verr)
		}
		version, dirty = v, d
		return nil
	})
	return version, dirty, err
}

func (mg *Migration) run(fn func(m Migrator) error) (err error) {
	m, err := mg.engine("file://"+mg.db.Migrations, mg.db.DatabaseURI)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			err = errors.Join(err, fmt.Errorf("migration source: %w", serr))
		}
		if dberr != nil {
			err = errors.Join(err, fmt.Errorf("migration database: %w", dberr))
		}
	}()

	return fn(m)
}
