package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{Local: config.Local{
		Path:           filepath.Join(t.TempDir(), "nested", "vedicas.db"),
		KeyringService: "vedicas-test",
	}}

	s, err := NewClientStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// ── kv ────────────────────────────────────────────────────────────────────────

func TestKVRepository(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	_, err := s.KV.Get(ctx, models.SnapshotKey)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.KV.Put(ctx, models.SnapshotKey, []byte(`{"v":1}`)))
	require.NoError(t, s.KV.Put(ctx, models.SnapshotKey, []byte(`{"v":2}`)))

	got, err := s.KV.Get(ctx, models.SnapshotKey)
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))

	require.NoError(t, s.KV.Delete(ctx, models.SnapshotKey))
	_, err = s.KV.Get(ctx, models.SnapshotKey)
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.KV.Delete(ctx, "never-written"))
}

// ── seed logs ─────────────────────────────────────────────────────────────────

func TestSeedLogRepository(t *testing.T) {
	s := newTestClientStorages(t)
	ctx := testContext()

	first, err := s.SeedLogs.Water(ctx, "seed-1", "2026-03-01")
	require.NoError(t, err)

	again, err := s.SeedLogs.Water(ctx, "seed-1", "2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, first, again, "watering the same day twice keeps one row")

	_, err = s.SeedLogs.Water(ctx, "seed-1", "2026-02-28")
	require.NoError(t, err)
	_, err = s.SeedLogs.Water(ctx, "seed-2", "2026-03-01")
	require.NoError(t, err)

	logs, err := s.SeedLogs.ListBySeed(ctx, "seed-1")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "2026-02-28", logs[0].Date)
	assert.Equal(t, "2026-03-01", logs[1].Date)
	assert.Equal(t, models.SeedLogCompleted, logs[0].Status)

	n, err := s.SeedLogs.DeleteBySeed(ctx, "seed-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	logs, err = s.SeedLogs.ListBySeed(ctx, "seed-1")
	require.NoError(t, err)
	assert.Empty(t, logs)

	logs, err = s.SeedLogs.ListBySeed(ctx, "seed-2")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

// ── session ───────────────────────────────────────────────────────────────────

func TestKeyringSessionStorage(t *testing.T) {
	keyring.MockInit()
	s := newTestClientStorages(t)
	ctx := testContext()

	_, err := s.Session.Load(ctx)
	require.ErrorIs(t, err, ErrSessionNotFound)

	session := models.Session{OwnerID: 7, Login: "asha", Token: "jwt-token"}
	require.NoError(t, s.Session.Save(ctx, session))

	raw, err := s.KV.Get(ctx, sessionKVKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "jwt-token", "token lives in the keyring")

	loaded, err := s.Session.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	require.NoError(t, s.Session.Clear(ctx))
	_, err = s.Session.Load(ctx)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestKeyringSessionStorage_FallsBackToLocalDB(t *testing.T) {
	keyring.MockInitWithError(errors.New("no secret service"))
	t.Cleanup(keyring.MockInit)
	s := newTestClientStorages(t)
	ctx := testContext()

	session := models.Session{OwnerID: 7, Login: "asha", Token: "jwt-token"}
	require.NoError(t, s.Session.Save(ctx, session))

	raw, err := s.KV.Get(ctx, sessionKVKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "jwt-token")

	loaded, err := s.Session.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, loaded)

	require.NoError(t, s.Session.Clear(ctx), "keyring failures on clear are logged")
}
