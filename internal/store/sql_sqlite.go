package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/migrations"
	"github.com/mattn/go-sqlite3"
)

// newConnectSQLite opens the SQLite database at path. ":memory:" yields a
// private in-memory database that lives as long as the pool.
func newConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// SQLite serializes writers; one connection also keeps ":memory:" alive.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	// ping database
	if err = pingWithRetry(ctx, conn, log); err != nil {
		log.Err(err).Str("func", "newConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Info().Str("func", "newConnectSQLite").Msg("connected to database successfully")

	return newSQLiteDB(conn, log), nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per
// connection by default.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=1"
}

func newSQLiteDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            migrations.SQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
