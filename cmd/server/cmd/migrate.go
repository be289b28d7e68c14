package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/infrastructure/migration"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции схемы PostgreSQL",
	Long: `Применяет миграции из MIGRATIONS_PATH к DATABASE_URI и печатает версию схемы.
С флагом --down откатывает все миграции.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if cfg.Storage.Driver != config.DriverPostgres {
			return fmt.Errorf("миграции нужны только для STORAGE_DRIVER=%s, сейчас %s",
				config.DriverPostgres, cfg.Storage.Driver)
		}

		mg := migration.NewMigration(cfg.DB, migration.DefaultEngine)

		if migrateDown {
			if err := mg.Down(); err != nil {
				return err
			}
			log.Info("migrations rolled back")
			return nil
		}

		if err := mg.Up(); err != nil {
			return err
		}

		version, dirty, err := mg.Version()
		if err != nil {
			return err
		}
		log.Info("migrations applied", "version", version, "dirty", dirty)

		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "откатить все миграции")
}
