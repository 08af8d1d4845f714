package config

import (
	"fmt"
)

// ClientConfig is the client projection of [StructuredConfig].
type ClientConfig struct {
	Adapter Adapter
	Storage ClientStorage
	Workers Workers
	Log     Log
}

// ClientStorage is the client subset of [Storage]; the client never talks
// to PostgreSQL directly.
type ClientStorage struct {
	Local Local
	Cache Cache
}

// GetClientConfig loads the client configuration. path overrides the
// CONFIG environment variable when non-empty.
func GetClientConfig(path string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withPath(path).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Storage: ClientStorage{
			Local: cfg.Storage.Local,
			Cache: cfg.Storage.Cache,
		},
		Workers: cfg.Workers,
		Log:     cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}
