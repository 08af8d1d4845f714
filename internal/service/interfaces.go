package service

import (
	"context"

	"github.com/MKhiriev/vedicas-garden/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService manages the single profile of an owner.
type ProfileService interface {
	// Get returns store.ErrProfileNotFound when nothing was saved yet.
	Get(ctx context.Context, ownerID int64) (models.Profile, error)
	Put(ctx context.Context, ownerID int64, profile models.Profile) (models.UpsertResult, error)
}

// SeedService manages the owner's seeds. Put and Sync upsert by client id.
type SeedService interface {
	List(ctx context.Context, ownerID int64) ([]models.Seed, error)
	Put(ctx context.Context, ownerID int64, seed models.Seed) (models.UpsertResult, error)
	Sync(ctx context.Context, ownerID int64, seeds []models.Seed) (models.SyncResult, error)
	Delete(ctx context.Context, ownerID int64, clientSideID string) error
}

type WisdomService interface {
	List(ctx context.Context, ownerID int64) ([]models.WisdomNote, error)
	Put(ctx context.Context, ownerID int64, note models.WisdomNote) (models.UpsertResult, error)
	Sync(ctx context.Context, ownerID int64, notes []models.WisdomNote) (models.SyncResult, error)
	Delete(ctx context.Context, ownerID int64, clientSideID string) error
}

// MessageService manages chat history. Messages are append-only: a known
// client id is skipped, never patched.
type MessageService interface {
	List(ctx context.Context, ownerID int64, guruID string) ([]models.Message, error)
	Add(ctx context.Context, ownerID int64, msg models.Message) (models.UpsertResult, error)
	Sync(ctx context.Context, ownerID int64, msgs []models.Message) (models.SyncResult, error)
	Clear(ctx context.Context, ownerID int64) (int64, error)
}

type CheckinService interface {
	List(ctx context.Context, ownerID int64) ([]models.Checkin, error)
	Put(ctx context.Context, ownerID int64, checkin models.Checkin) (models.UpsertResult, error)
	Sync(ctx context.Context, ownerID int64, checkins []models.Checkin) (models.SyncResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
