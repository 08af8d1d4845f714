package store

import (
	"context"

	"github.com/MKhiriev/vedicas-garden/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// KVRepository is the local key-value table holding persisted blobs.
type KVRepository interface {
	// Get returns [ErrKeyNotFound] when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SeedLogRepository is the local watering log, unique per seed and day.
type SeedLogRepository interface {
	// Water records a completion and returns the log id. Watering the same
	// day twice returns the existing id.
	Water(ctx context.Context, seedClientID, date string) (int64, error)
	ListBySeed(ctx context.Context, seedClientID string) ([]models.SeedLog, error)
	DeleteBySeed(ctx context.Context, seedClientID string) (int64, error)
}

// SessionStorage keeps the authenticated session between client runs.
type SessionStorage interface {
	// Load returns [ErrSessionNotFound] when nobody is signed in.
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}
