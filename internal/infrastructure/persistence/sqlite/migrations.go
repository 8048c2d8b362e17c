package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/kiosk/internal/logging"
)

//go:embed migrations/*.sql
var schemaFiles embed.FS

// newSchemaProvider binds the embedded settings schema to db. The provider
// must not be closed: that would close db.
func newSchemaProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(schemaFiles, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectSQLite3, db, migrations)
}

// migrateSettings brings the settings schema to the newest embedded version.
func migrateSettings(ctx context.Context, db *sql.DB) error {
	provider, err := newSchemaProvider(db)
	if err != nil {
		return fmt.Errorf("load settings schema: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate settings schema: %w", err)
	}

	log := logging.FromContext(ctx)
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Dur("took", r.Duration).
			Msg("settings schema migrated")
	}
	return nil
}

// schemaVersion reports the applied settings schema version.
func schemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newSchemaProvider(db)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}
