package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/mock"
	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGardenSvc(t *testing.T, ctrl *gomock.Controller) (*clientGardenService, *LocalState, *mock.MockSeedLogRepository, *mock.MockRemoteStore) {
	t.Helper()
	state := newTestState(t, ctrl)
	seedLogs := mock.NewMockSeedLogRepository(ctrl)
	remote := mock.NewMockRemoteStore(ctrl)
	svc := NewClientGardenService(state, seedLogs, remote, &sequenceIDs{}, logger.Nop()).(*clientGardenService)
	svc.now = func() time.Time { return testNow }
	return svc, state, seedLogs, remote
}

func TestClientGardenService_PlantSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, state, _, _ := newTestGardenSvc(t, ctrl)
	ctx := context.Background()

	seed, err := svc.PlantSeed(ctx, models.SeedOffer{Title: "  Morning walk ", Difficulty: "Impossible"}, "health_yoga")
	require.NoError(t, err)

	assert.Equal(t, "id-1", seed.ClientSideID)
	assert.Equal(t, "Morning walk", seed.Title)
	assert.Equal(t, models.DefaultCategory, seed.Category)
	assert.Equal(t, models.DifficultyMedium, seed.Difficulty)
	assert.Equal(t, "health_yoga", seed.GuruID)
	assert.True(t, seed.Active)
	assert.Equal(t, testNow, seed.CreatedAt)
	assert.Len(t, state.Snapshot().Seeds, 1)

	_, err = svc.PlantSeed(ctx, models.SeedOffer{Title: " "}, "")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestClientGardenService_WaterSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, state, seedLogs, _ := newTestGardenSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, state.PutSeed(ctx, models.Seed{ClientSideID: "s1", Difficulty: models.DifficultyHard}))

	seedLogs.EXPECT().Water(ctx, "s1", testToday).Return(int64(1), nil)

	seed, err := svc.WaterSeed(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, seed.Streak)
	assert.Equal(t, []string{testToday}, seed.CompletedDates)

	_, err = svc.WaterSeed(ctx, "s1")
	assert.ErrorIs(t, err, ErrAlreadyWatered)

	_, err = svc.WaterSeed(ctx, "missing")
	assert.ErrorIs(t, err, ErrSeedNotFound)
}

func TestClientGardenService_WaterSeed_LogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, state, seedLogs, _ := newTestGardenSvc(t, ctrl)
	ctx := context.Background()
	require.NoError(t, state.PutSeed(ctx, models.Seed{ClientSideID: "s1"}))

	seedLogs.EXPECT().Water(ctx, "s1", testToday).Return(int64(0), errors.New("database is locked"))

	_, err := svc.WaterSeed(ctx, "s1")
	require.Error(t, err)
	assert.Zero(t, state.Snapshot().Seeds[0].Streak)
}

func TestClientGardenService_DeleteSeed(t *testing.T) {
	ctx := context.Background()

	t.Run("signed in, remote never saw it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, state, seedLogs, remote := newTestGardenSvc(t, ctrl)
		require.NoError(t, state.PutSeed(ctx, models.Seed{ClientSideID: "s1"}))

		seedLogs.EXPECT().DeleteBySeed(ctx, "s1").Return(int64(3), nil)
		remote.EXPECT().Token().Return("tok")
		remote.EXPECT().DeleteSeed(ctx, "s1").Return(adapter.ErrNotFound)

		require.NoError(t, svc.DeleteSeed(ctx, "s1"))
		assert.Empty(t, state.Snapshot().Seeds)
	})

	t.Run("offline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, state, seedLogs, remote := newTestGardenSvc(t, ctrl)
		require.NoError(t, state.PutSeed(ctx, models.Seed{ClientSideID: "s1"}))

		seedLogs.EXPECT().DeleteBySeed(ctx, "s1").Return(int64(0), nil)
		remote.EXPECT().Token().Return("")

		require.NoError(t, svc.DeleteSeed(ctx, "s1"))
	})

	t.Run("unknown seed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _, _ := newTestGardenSvc(t, ctrl)

		assert.ErrorIs(t, svc.DeleteSeed(ctx, "missing"), ErrSeedNotFound)
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, state, seedLogs, remote := newTestGardenSvc(t, ctrl)
		require.NoError(t, state.PutSeed(ctx, models.Seed{ClientSideID: "s1"}))

		seedLogs.EXPECT().DeleteBySeed(ctx, "s1").Return(int64(0), nil)
		remote.EXPECT().Token().Return("tok")
		remote.EXPECT().DeleteSeed(ctx, "s1").Return(adapter.ErrServiceUnavailable)

		assert.ErrorIs(t, svc.DeleteSeed(ctx, "s1"), ErrRemoteFailure)
	})
}

func TestClientGardenService_Wisdom(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, state, _, remote := newTestGardenSvc(t, ctrl)
	ctx := context.Background()

	note, err := svc.AddWisdom(ctx, models.WisdomOffer{Title: "Golden milk", Content: "Turmeric, ghee"}, "health_ayurveda")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategory, note.Category)

	fav, err := svc.ToggleFavorite(ctx, note.ClientSideID)
	require.NoError(t, err)
	assert.True(t, fav.Favorite)
	assert.True(t, state.Snapshot().Wisdom[0].Favorite)

	_, err = svc.ToggleFavorite(ctx, "missing")
	assert.ErrorIs(t, err, ErrWisdomNotFound)

	remote.EXPECT().Token().Return("tok")
	remote.EXPECT().DeleteWisdom(ctx, note.ClientSideID).Return(nil)
	require.NoError(t, svc.DeleteWisdom(ctx, note.ClientSideID))
	assert.Empty(t, state.Snapshot().Wisdom)

	_, err = svc.AddWisdom(ctx, models.WisdomOffer{}, "")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestClientGardenService_DailyCheckin(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, state, _, _ := newTestGardenSvc(t, ctrl)
	ctx := context.Background()

	c, err := svc.DailyCheckin(ctx, models.Checkin{Mood: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, testToday, c.Date)

	_, err = svc.DailyCheckin(ctx, models.Checkin{Mood: intPtr(11)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	again, err := svc.DailyCheckin(ctx, models.Checkin{Energy: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, c.ClientSideID, again.ClientSideID)
	assert.Len(t, state.Snapshot().Checkins, 1)
}

func TestClientGardenService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, state, _, _ := newTestGardenSvc(t, ctrl)
	ctx := context.Background()

	require.NoError(t, state.PutSeed(ctx, models.Seed{
		ClientSideID: "s1", Difficulty: models.DifficultyEasy, Streak: 2,
		CompletedDates: []string{"2026-03-13", testToday},
	}))
	require.NoError(t, state.PutSeed(ctx, models.Seed{
		ClientSideID: "s2", Difficulty: models.DifficultyHeroic, Streak: 5,
		CompletedDates: []string{"2026-03-12"},
	}))

	assert.Equal(t, models.GardenStats{Seeds: 2, WateredToday: 1, Points: 2*10 + 50, BestStreak: 5}, svc.Stats())
}

// A seed planted offline, pushed, watered and pushed again is patched at the
// remote row it was first inserted as.
func TestClientGarden_PlantPushWaterPush(t *testing.T) {
	ctrl := gomock.NewController(t)
	garden, state, seedLogs, remote := newTestGardenSvc(t, ctrl)
	syncSvc := NewClientSyncService(state, remote, logger.Nop())
	ctx := context.Background()

	rows := map[string]models.Seed{}
	nextID := int64(1)
	var pushed [][]models.Seed

	remote.EXPECT().Token().Return("tok").Times(2)
	remote.EXPECT().SyncSeeds(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, seeds []models.Seed) (models.SyncResult, error) {
			pushed = append(pushed, seeds)
			var res models.SyncResult
			for _, s := range seeds {
				row, ok := rows[s.ClientSideID]
				if !ok {
					s.ID, nextID = nextID, nextID+1
				} else {
					s.ID = row.ID
				}
				rows[s.ClientSideID] = s
				res.Add(models.UpsertResult{ID: s.ID, Inserted: !ok})
			}
			return res, nil
		},
	).Times(2)

	seed, err := garden.PlantSeed(ctx, models.SeedOffer{Title: "Surya namaskar"}, "health_yoga")
	require.NoError(t, err)
	require.True(t, syncSvc.Push(ctx))

	seedLogs.EXPECT().Water(ctx, seed.ClientSideID, testToday).Return(int64(1), nil)
	_, err = garden.WaterSeed(ctx, seed.ClientSideID)
	require.NoError(t, err)
	require.True(t, syncSvc.Push(ctx))

	require.Len(t, pushed, 2)
	second := pushed[1]
	require.Len(t, second, 1)
	assert.Equal(t, seed.ClientSideID, second[0].ClientSideID)
	assert.Equal(t, 1, second[0].Streak)
	assert.Equal(t, []string{testToday}, second[0].CompletedDates)
	require.NotNil(t, second[0].LastCompleted)
	assert.Equal(t, testToday, *second[0].LastCompleted)

	require.Len(t, rows, 1, "no duplicate row")
	assert.Equal(t, int64(1), rows[seed.ClientSideID].ID)
	assert.Equal(t, 1, rows[seed.ClientSideID].Streak)
}
