package service

import (
	"context"
	"time"

	"github.com/MKhiriev/vedicas-garden/models"
)

// ClientAuthService signs the user in and out of the remote store and keeps
// the session between runs.
type ClientAuthService interface {
	// Register creates the account, stores the session and pushes local data
	// so nothing collected while offline is lost.
	Register(ctx context.Context, login, password string) (models.Session, error)

	// Login stores the session and pulls the remote collections.
	Login(ctx context.Context, login, password string) (models.Session, error)

	// Restore loads a saved session and hands its token to the adapter.
	// ok is false when nobody is signed in.
	Restore(ctx context.Context) (session models.Session, ok bool, err error)

	// SignOut pushes local data, then forgets the session. Local data stays.
	SignOut(ctx context.Context) error

	Authenticated() bool
}

// ClientSyncService reconciles the local state with the remote store.
type ClientSyncService interface {
	// Pull fetches every remote collection once per session token and
	// replaces each local collection for which the remote returned data.
	Pull(ctx context.Context) error

	// Push uploads profile, seeds, wisdom, messages and check-ins in that
	// order. It reports false when not authenticated or when any step fails.
	Push(ctx context.Context) bool

	// ResetPullGuard makes the next Pull run again.
	ResetPullGuard()
}

// ClientSyncJob periodically pushes local data in the background.
type ClientSyncJob interface {
	// Start stops any running job and pushes every interval, defaulting to
	// five minutes when interval is not positive.
	Start(ctx context.Context, interval time.Duration)

	// Stop blocks until the background goroutine has exited.
	Stop()
}

// ClientGardenService manages seeds, wisdom notes and daily check-ins.
type ClientGardenService interface {
	PlantSeed(ctx context.Context, offer models.SeedOffer, guruID string) (models.Seed, error)
	// WaterSeed records today's completion. Watering twice a day returns
	// ErrAlreadyWatered.
	WaterSeed(ctx context.Context, clientSideID string) (models.Seed, error)
	DeleteSeed(ctx context.Context, clientSideID string) error

	AddWisdom(ctx context.Context, offer models.WisdomOffer, guruID string) (models.WisdomNote, error)
	ToggleFavorite(ctx context.Context, clientSideID string) (models.WisdomNote, error)
	DeleteWisdom(ctx context.Context, clientSideID string) error

	// DailyCheckin upserts today's check-in when c.Date is empty.
	DailyCheckin(ctx context.Context, c models.Checkin) (models.Checkin, error)

	Stats() models.GardenStats
}

// ClientChatService runs guru conversations.
type ClientChatService interface {
	// Greet opens an empty conversation with a greeting from the guru. It is
	// a no-op when history exists.
	Greet(ctx context.Context, guruID string) (*models.Message, error)

	// Send stores text, asks the guru and stores the reply. Offers found in
	// the reply are returned; the stored message keeps the raw text.
	Send(ctx context.Context, guruID, text string) (models.Message, models.Suggestions, error)

	History(guruID string) []models.Message

	// Restart deletes the local conversation with guruID.
	Restart(ctx context.Context, guruID string) error

	AcceptSeedOffer(ctx context.Context, guruID string, offer models.SeedOffer) (models.Seed, error)
	AcceptWisdomOffer(ctx context.Context, guruID string, offer models.WisdomOffer) (models.WisdomNote, error)
}

// ClientAstroService calculates and stores charts.
type ClientAstroService interface {
	// CalculateBirthChart fetches chart and dasha concurrently and stores
	// both with the birth data.
	CalculateBirthChart(ctx context.Context, birth models.BirthData) error

	// CalculateCompatibility compares the user with a partner. It requires
	// the user's birth data.
	CalculateCompatibility(ctx context.Context, partner models.BirthData) (*models.SynastryResponse, error)

	Interpret(ctx context.Context, structured bool) (*models.Interpretation, error)

	// Alignment returns the panchang for now at the user's birth place.
	Alignment(ctx context.Context) (*models.AlignmentResponse, error)
}
