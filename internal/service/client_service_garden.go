package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/internal/validators"
	"github.com/MKhiriev/vedicas-garden/models"
)

// idGenerator issues client-side ids.
type idGenerator interface {
	Generate() string
}

type clientGardenService struct {
	state     *LocalState
	seedLogs  store.SeedLogRepository
	remote    adapter.RemoteStore
	ids       idGenerator
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func NewClientGardenService(state *LocalState, seedLogs store.SeedLogRepository, remote adapter.RemoteStore, ids idGenerator, logger *logger.Logger) ClientGardenService {
	return &clientGardenService{
		state:     state,
		seedLogs:  seedLogs,
		remote:    remote,
		ids:       ids,
		validator: validators.NewDocumentValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (g *clientGardenService) today() string {
	return g.now().Format(time.DateOnly)
}

// PlantSeed creates a seed from offer. Missing category and unknown
// difficulty fall back to General and Medium.
func (g *clientGardenService) PlantSeed(ctx context.Context, offer models.SeedOffer, guruID string) (models.Seed, error) {
	title := strings.TrimSpace(offer.Title)
	if title == "" {
		return models.Seed{}, ErrEmptyTitle
	}

	category := strings.TrimSpace(offer.Category)
	if category == "" {
		category = models.DefaultCategory
	}
	difficulty := offer.Difficulty
	if !difficulty.Valid() {
		difficulty = models.DifficultyMedium
	}

	now := g.now().UTC()
	seed := models.Seed{
		ClientSideID:   g.ids.Generate(),
		Title:          title,
		Category:       category,
		Description:    offer.Description,
		Difficulty:     difficulty,
		GuruID:         guruID,
		CompletedDates: []string{},
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := g.state.PutSeed(ctx, seed); err != nil {
		return models.Seed{}, err
	}
	g.logger.Info().Str("client_side_id", seed.ClientSideID).Str("title", title).Msg("seed planted")
	return seed, nil
}

func (g *clientGardenService) WaterSeed(ctx context.Context, clientSideID string) (models.Seed, error) {
	day := g.today()

	snap := g.state.Snapshot()
	i := slices.IndexFunc(snap.Seeds, func(s models.Seed) bool { return s.ClientSideID == clientSideID })
	if i < 0 {
		return models.Seed{}, ErrSeedNotFound
	}
	if snap.Seeds[i].WateredOn(day) {
		return snap.Seeds[i], ErrAlreadyWatered
	}

	if _, err := g.seedLogs.Water(ctx, clientSideID, day); err != nil {
		return models.Seed{}, fmt.Errorf("error writing seed log: %w", err)
	}

	seed, changed, err := g.state.WaterSeed(ctx, clientSideID, day)
	if err != nil {
		return models.Seed{}, err
	}
	if !changed {
		return seed, ErrAlreadyWatered
	}
	return seed, nil
}

// DeleteSeed removes the seed and its logs locally, then at the remote store
// when signed in. A seed the remote never saw is not an error.
func (g *clientGardenService) DeleteSeed(ctx context.Context, clientSideID string) error {
	removed, err := g.state.RemoveSeed(ctx, clientSideID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrSeedNotFound
	}

	if _, err = g.seedLogs.DeleteBySeed(ctx, clientSideID); err != nil {
		return fmt.Errorf("error deleting seed logs: %w", err)
	}

	return g.deleteRemote(ctx, clientSideID, g.remote.DeleteSeed)
}

func (g *clientGardenService) AddWisdom(ctx context.Context, offer models.WisdomOffer, guruID string) (models.WisdomNote, error) {
	if strings.TrimSpace(offer.Title) == "" && strings.TrimSpace(offer.Content) == "" {
		return models.WisdomNote{}, ErrEmptyTitle
	}
	category := strings.TrimSpace(offer.Category)
	if category == "" {
		category = models.DefaultCategory
	}

	now := g.now().UTC()
	note := models.WisdomNote{
		ClientSideID: g.ids.Generate(),
		Title:        strings.TrimSpace(offer.Title),
		Category:     category,
		Content:      offer.Content,
		GuruID:       guruID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := g.state.PutWisdom(ctx, note); err != nil {
		return models.WisdomNote{}, err
	}
	return note, nil
}

func (g *clientGardenService) ToggleFavorite(ctx context.Context, clientSideID string) (models.WisdomNote, error) {
	snap := g.state.Snapshot()
	i := slices.IndexFunc(snap.Wisdom, func(w models.WisdomNote) bool { return w.ClientSideID == clientSideID })
	if i < 0 {
		return models.WisdomNote{}, ErrWisdomNotFound
	}

	note := snap.Wisdom[i]
	note.Favorite = !note.Favorite
	note.UpdatedAt = g.now().UTC()
	if err := g.state.PutWisdom(ctx, note); err != nil {
		return models.WisdomNote{}, err
	}
	return note, nil
}

func (g *clientGardenService) DeleteWisdom(ctx context.Context, clientSideID string) error {
	removed, err := g.state.RemoveWisdom(ctx, clientSideID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrWisdomNotFound
	}
	return g.deleteRemote(ctx, clientSideID, g.remote.DeleteWisdom)
}

func (g *clientGardenService) deleteRemote(ctx context.Context, clientSideID string, del func(context.Context, string) error) error {
	if g.remote.Token() == "" {
		return nil
	}
	err := del(ctx, clientSideID)
	if err == nil || errors.Is(err, adapter.ErrNotFound) {
		return nil
	}
	return mapAdapterError(err)
}

func (g *clientGardenService) DailyCheckin(ctx context.Context, c models.Checkin) (models.Checkin, error) {
	if c.Date == "" {
		c.Date = g.today()
	}
	if err := g.validator.Validate(ctx, c, validators.FieldDate, validators.FieldScores); err != nil {
		return models.Checkin{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := g.now().UTC()
	c.ClientSideID = g.ids.Generate()
	c.CreatedAt = now
	c.UpdatedAt = now
	return g.state.PutCheckin(ctx, c)
}

func (g *clientGardenService) Stats() models.GardenStats {
	day := g.today()
	snap := g.state.Snapshot()

	stats := models.GardenStats{Seeds: len(snap.Seeds)}
	for _, s := range snap.Seeds {
		if s.WateredOn(day) {
			stats.WateredToday++
		}
		stats.Points += len(s.CompletedDates) * s.Difficulty.Points()
		stats.BestStreak = max(stats.BestStreak, s.Streak)
	}
	return stats
}
