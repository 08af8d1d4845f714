package store

import (
	"context"

	"github.com/MKhiriev/vedicas-garden/models"
)

// UserRepository stores accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ProfileRepository stores the single profile of each owner.
type ProfileRepository interface {
	// Get returns [ErrProfileNotFound] when the owner has none.
	Get(ctx context.Context, ownerID int64) (models.Profile, error)
	// Upsert creates the profile or patches its non-empty fields.
	Upsert(ctx context.Context, ownerID int64, profile models.Profile) (models.UpsertResult, error)
}

// SeedRepository stores seeds keyed by (owner, client_side_id).
type SeedRepository interface {
	List(ctx context.Context, ownerID int64) ([]models.Seed, error)
	Upsert(ctx context.Context, ownerID int64, seed models.Seed) (models.UpsertResult, error)
	SyncAll(ctx context.Context, ownerID int64, seeds []models.Seed) (models.SyncResult, error)
	Delete(ctx context.Context, ownerID int64, clientSideID string) error
}

// WisdomRepository stores wisdom notes keyed by (owner, client_side_id).
type WisdomRepository interface {
	List(ctx context.Context, ownerID int64) ([]models.WisdomNote, error)
	Upsert(ctx context.Context, ownerID int64, note models.WisdomNote) (models.UpsertResult, error)
	SyncAll(ctx context.Context, ownerID int64, notes []models.WisdomNote) (models.SyncResult, error)
	Delete(ctx context.Context, ownerID int64, clientSideID string) error
}

// MessageRepository stores chat messages. Messages are never patched.
type MessageRepository interface {
	// List returns the owner's messages, all gurus when guruID is empty.
	List(ctx context.Context, ownerID int64, guruID string) ([]models.Message, error)
	// Add inserts msg unless its client id exists; Inserted reports which.
	Add(ctx context.Context, ownerID int64, msg models.Message) (models.UpsertResult, error)
	SyncAll(ctx context.Context, ownerID int64, msgs []models.Message) (models.SyncResult, error)
	Clear(ctx context.Context, ownerID int64) (int64, error)
}

// CheckinRepository stores daily check-ins keyed by (owner, client_side_id).
type CheckinRepository interface {
	List(ctx context.Context, ownerID int64) ([]models.Checkin, error)
	Upsert(ctx context.Context, ownerID int64, checkin models.Checkin) (models.UpsertResult, error)
	SyncAll(ctx context.Context, ownerID int64, checkins []models.Checkin) (models.SyncResult, error)
}
