package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/migrations"
)

// Storages groups the remote document store repositories.
type Storages struct {
	UserRepository    UserRepository
	ProfileRepository ProfileRepository
	SeedRepository    SeedRepository
	WisdomRepository  WisdomRepository
	MessageRepository MessageRepository
	CheckinRepository CheckinRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// every repository to the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = migrations.Migrate(db.DB, migrations.Postgres); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProfileRepository: NewProfileRepository(db, log),
		SeedRepository:    NewSeedRepository(db, log),
		WisdomRepository:  NewWisdomRepository(db, log),
		MessageRepository: NewMessageRepository(db, log),
		CheckinRepository: NewCheckinRepository(db, log),
		db:                db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
