package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/travel-journal-api/internal/config"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
)

// Storages bundles the repositories sharing one database connection.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository

	db *DB
}

// NewStorages connects to the configured database, applies the migrations
// of its dialect and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("dialect", db.dialect).Msg("database migrations applied")

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		db:             db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
