package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/mock"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocalState_Init(t *testing.T) {
	ctx := context.Background()

	t.Run("missing blob starts empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKVRepository(ctrl)
		kv.EXPECT().Get(ctx, models.SnapshotKey).Return(nil, store.ErrKeyNotFound)

		s := NewLocalState(kv, logger.Nop())
		require.NoError(t, s.Init(ctx))
		assert.Empty(t, s.Snapshot().Seeds)
	})

	t.Run("restores persisted snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		raw, err := json.Marshal(models.Snapshot{
			Profile: models.Profile{Name: "Mira"},
			Seeds:   []models.Seed{{ClientSideID: "s1", Title: "Walk"}},
		})
		require.NoError(t, err)

		kv := mock.NewMockKVRepository(ctrl)
		kv.EXPECT().Get(ctx, models.SnapshotKey).Return(raw, nil)

		s := NewLocalState(kv, logger.Nop())
		require.NoError(t, s.Init(ctx))
		snap := s.Snapshot()
		assert.Equal(t, "Mira", snap.Profile.Name)
		require.Len(t, snap.Seeds, 1)
		assert.Equal(t, "Walk", snap.Seeds[0].Title)
	})

	t.Run("corrupt blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kv := mock.NewMockKVRepository(ctrl)
		kv.EXPECT().Get(ctx, models.SnapshotKey).Return([]byte("{not json"), nil)

		err := NewLocalState(kv, logger.Nop()).Init(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error decoding local state")
	})
}

func TestLocalState_FailedWriteKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	kv := mock.NewMockKVRepository(ctrl)
	kv.EXPECT().Put(ctx, models.SnapshotKey, gomock.Any()).Return(errors.New("disk full"))

	s := NewLocalState(kv, logger.Nop())
	err := s.PutSeed(ctx, models.Seed{ClientSideID: "s1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error persisting local state")
	assert.Empty(t, s.Snapshot().Seeds)
}

func TestLocalState_SnapshotIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := newTestState(t, ctrl)

	require.NoError(t, s.PutSeed(ctx, models.Seed{ClientSideID: "s1", CompletedDates: []string{"2026-03-13"}}))

	snap := s.Snapshot()
	snap.Seeds[0].CompletedDates[0] = "mutated"
	snap.Seeds[0].Title = "mutated"

	fresh := s.Snapshot()
	assert.Equal(t, "2026-03-13", fresh.Seeds[0].CompletedDates[0])
	assert.Empty(t, fresh.Seeds[0].Title)
}

func TestLocalState_WaterSeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := newTestState(t, ctrl)
	require.NoError(t, s.PutSeed(ctx, models.Seed{ClientSideID: "s1"}))

	seed, changed, err := s.WaterSeed(ctx, "s1", testToday)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, seed.Streak)
	require.NotNil(t, seed.LastCompleted)
	assert.Equal(t, testToday, *seed.LastCompleted)

	_, changed, err = s.WaterSeed(ctx, "s1", testToday)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, s.Snapshot().Seeds[0].Streak)

	_, _, err = s.WaterSeed(ctx, "missing", testToday)
	assert.ErrorIs(t, err, ErrSeedNotFound)
}

func TestLocalState_PutCheckinUpsertsByDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := newTestState(t, ctrl)

	first, err := s.PutCheckin(ctx, models.Checkin{ClientSideID: "c1", Date: testToday, Mood: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, "c1", first.ClientSideID)

	second, err := s.PutCheckin(ctx, models.Checkin{ClientSideID: "c2", Date: testToday, Mood: intPtr(8)})
	require.NoError(t, err)
	assert.Equal(t, "c1", second.ClientSideID)

	snap := s.Snapshot()
	require.Len(t, snap.Checkins, 1)
	assert.Equal(t, 8, *snap.Checkins[0].Mood)
}

func TestLocalState_ClearMessagesForOneGuru(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := newTestState(t, ctrl)

	for i, g := range []string{"life_career", "health_yoga", "life_career"} {
		require.NoError(t, s.AppendMessage(ctx, models.Message{GuruID: g, Timestamp: int64(i)}))
	}

	n, err := s.ClearMessages(ctx, "life_career")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	snap := s.Snapshot()
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, "health_yoga", snap.Messages[0].GuruID)
}

func TestLocalState_Intakes(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := newTestState(t, ctrl)

	require.NoError(t, s.SetSelectedGurus(ctx, []string{"health_yoga", "life_romance"}))

	next, ok := s.NextIncompleteGuru()
	require.True(t, ok)
	assert.Equal(t, "health_yoga", next)

	require.NoError(t, s.MarkIntakeComplete(ctx, "health_yoga"))
	require.NoError(t, s.MarkIntakeComplete(ctx, "health_yoga"))
	assert.Equal(t, []string{"health_yoga"}, s.Snapshot().CompletedIntakes)

	next, ok = s.NextIncompleteGuru()
	require.True(t, ok)
	assert.Equal(t, "life_romance", next)

	require.NoError(t, s.MarkIntakeComplete(ctx, "life_romance"))
	_, ok = s.NextIncompleteGuru()
	assert.False(t, ok)
}

func TestLocalState_SetChartMirrorsIntoProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := newTestState(t, ctrl)

	chart := &models.ChartResponse{Charts: map[string]models.DivisionalChart{"D1": {Planets: map[string]models.PlanetPosition{}}}}
	dasha := &models.DashaResponse{MoonNakshatra: models.Nakshatra{Name: "Rohini"}}
	birth := models.BirthData{Date: "1990-05-15", Time: "14:30", Latitude: 28.6, Longitude: 77.2}

	require.NoError(t, s.SetChart(ctx, birth, chart, dasha))

	snap := s.Snapshot()
	require.NotNil(t, snap.Profile.BirthData)
	assert.Equal(t, birth, *snap.Profile.BirthData)
	assert.NotEmpty(t, snap.Profile.ChartData)
	assert.JSONEq(t, `{"moon_nakshatra":{"name":"Rohini","pada":0,"lord":""}}`, string(snap.Profile.DashaData))
	assert.Same(t, dasha, snap.Dasha)
}

func TestLocalState_SetChartFromProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := newTestState(t, ctrl)

	p := models.Profile{
		ChartData: json.RawMessage(`{"D1":{"planets":{"Sun":{"sign":"Leo"}}},"meta":{}}`),
		DashaData: json.RawMessage(`not json`),
	}
	require.NoError(t, s.SetChartFromProfile(ctx, p))

	snap := s.Snapshot()
	d1, ok := snap.Chart.Rashi()
	require.True(t, ok)
	assert.Equal(t, "Leo", d1.Planets["Sun"].Sign)
	assert.Nil(t, snap.Dasha)
}

func TestLocalState_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	kv := mock.NewMockKVRepository(ctrl)
	kv.EXPECT().Put(gomock.Any(), models.SnapshotKey, gomock.Any()).Return(nil)
	kv.EXPECT().Delete(ctx, models.SnapshotKey).Return(nil)

	s := NewLocalState(kv, logger.Nop())
	require.NoError(t, s.PutWisdom(ctx, models.WisdomNote{ClientSideID: "w1"}))
	s.SetError(errors.New("stale"))

	require.NoError(t, s.Reset(ctx))
	assert.Empty(t, s.Snapshot().Wisdom)
	assert.NoError(t, s.LastError())
}
