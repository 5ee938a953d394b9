// Package migrations embeds the SQL schema of the journal database and
// applies it with goose. Each supported dialect has its own directory.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Dialect names accepted by Migrate.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

var (
	ErrNilDB              = errors.New("migration error: db is nil")
	ErrUnsupportedDialect = errors.New("migration error: unsupported dialect")
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var gooseDialects = map[string]goose.Dialect{
	Postgres: goose.DialectPostgres,
	SQLite:   goose.DialectSQLite3,
}

// Migrate applies every pending migration of dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	gooseDialect, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	fsys, err := fs.Sub(embedMigrations, dialect)
	if err != nil {
		return fmt.Errorf("migration error reading embedded files: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
