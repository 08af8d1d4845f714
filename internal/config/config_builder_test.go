package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "boom")
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "env:1"}},
		&StructuredConfig{Server: Server{HTTPAddress: "file:2", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env:1", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout, "unset fields fall through to later sources")
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, defaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, defaultLocalPath, cfg.Storage.Local.Path)
	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_UsesFirstPath(t *testing.T) {
	path := writeTempFile(t, "cfg.yaml", "server:\n  http_address: \"127.0.0.1:9999\"\n")

	b := newConfigBuilder().withPath(path).withPath("/does/not/exist.json").withFile()
	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
}

func TestWithFile_MissingFile(t *testing.T) {
	_, err := newConfigBuilder().withPath("/does/not/exist.json").withFile().build()
	require.Error(t, err)
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withFile()
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://localhost:8080")
	t.Setenv("ADAPTER_CHART_API_ADDRESS", "http://localhost:8000")
	t.Setenv("WORKERS_SYNC_INTERVAL", "1m")

	path := writeTempFile(t, "client.json", `{"storage":{"local":{"path":"/tmp/x.db"}},"workers":{"sync_interval":"10m"}}`)

	cfg, err := GetClientConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "http://localhost:8000", cfg.Adapter.ChartAPIAddress)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval, "env beats file")
	assert.Equal(t, "/tmp/x.db", cfg.Storage.Local.Path)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_MissingAdapter(t *testing.T) {
	t.Setenv("ADAPTER_CHART_API_ADDRESS", "http://localhost:8000")

	_, err := GetClientConfig("")
	require.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() *StructuredConfig {
		c := defaults()
		c.App.TokenSignKey = "key"
		c.Storage.DB.DSN = "postgres://localhost/db"
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
