package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/migrations"
)

// ClientStorages groups the client-side repositories backed by one SQLite
// file.
type ClientStorages struct {
	KV       KVRepository
	SeedLogs SeedLogRepository
	Session  SessionStorage

	db *DB
}

// NewClientStorages opens the SQLite file, applies the local migrations and
// wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.Local, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = migrations.Migrate(db.DB, migrations.SQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVRepository(db, logger)
	return &ClientStorages{
		KV:       kv,
		SeedLogs: NewSeedLogRepository(db, logger),
		Session:  NewKeyringSessionStorage(kv, cfg.Local.KeyringService, logger),
		db:       db,
	}, nil
}

func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
