package postgres

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/openamr/amr/internal/config"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	apperrors "github.com/openamr/amr/pkg/errors"
)

// Migrator applies schema migrations to the taxonomy database.
type Migrator struct {
	m      *migrate.Migrate
	logger logging.Logger
}

// NewMigrator builds a migrator reading SQL files from cfg.MigrationPath.
func NewMigrator(cfg config.DatabaseConfig, log logging.Logger) (*Migrator, error) {
	if log == nil {
		log = logging.NewNopLogger()
	}
	m, err := migrate.New("file://"+cfg.MigrationPath, cfg.DSN())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to initialise migrator")
	}
	return &Migrator{m: m, logger: log.Named("migrator")}, nil
}

// Up applies all pending migrations. A no-op when already up to date.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "migration up failed")
	}
	version, dirty, _ := mg.m.Version()
	mg.logger.Info("migrations applied",
		logging.Int("version", int(version)),
		logging.Bool("dirty", dirty))
	return nil
}

// Down rolls back a single migration step.
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "migration down failed")
	}
	return nil
}

// Version reports the current schema version.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to read schema version")
	}
	return version, dirty, nil
}

// Close releases source and database resources.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	if srcErr != nil {
		return srcErr
	}
	return dbErr
}
