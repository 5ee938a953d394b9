package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/travel-journal-api/internal/config"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/migrations"
	"github.com/sethvargo/go-retry"
)

const (
	postgresDSNPrefix   = "postgres://"
	postgresqlDSNPrefix = "postgresql://"
	sqliteDSNPrefix     = "sqlite:"

	pingAttempts = 5
)

// pingBaseDelay is the first backoff delay between connection attempts.
var pingBaseDelay = 200 * time.Millisecond

// DB is a connection pool bound to one SQL dialect. The statement builder
// emits the placeholder format of that dialect.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN and waits until it answers
// a ping:
//   - postgres://… and postgresql://… are opened through pgx;
//   - sqlite:<path> is opened through go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dsn := cfg.DSN; {
	case strings.HasPrefix(dsn, postgresDSNPrefix), strings.HasPrefix(dsn, postgresqlDSNPrefix):
		return newConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, sqliteDSNPrefix):
		return newConnectSQLite(ctx, strings.TrimPrefix(dsn, sqliteDSNPrefix), log)
	default:
		return nil, fmt.Errorf("%w: expected postgres://, postgresql:// or sqlite: prefix", ErrUnsupportedDSN)
	}
}

// Migrate applies the schema migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// pingWithRetry pings conn until it answers, backing off exponentially for
// at most pingAttempts attempts.
func pingWithRetry(ctx context.Context, conn *sql.DB, log *logger.Logger) error {
	backoff := retry.WithMaxRetries(pingAttempts-1, retry.NewExponential(pingBaseDelay))

	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := conn.PingContext(ctx); err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("database ping failed")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error connecting database (ping): %w", err)
	}

	return nil
}

// classify returns the classification of err for the connection's dialect.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
