package config

import "time"

// Fallbacks applied after every other source.
const (
	defaultHTTPAddress     = "localhost:8080"
	defaultTokenIssuer     = "vedicas"
	defaultTokenDuration   = 24 * time.Hour
	defaultPasswordCost    = 10
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultLocalPath       = "vedicas.db"
	defaultKeyringService  = "vedicas"
	defaultCacheTTL        = 7 * 24 * time.Hour
	defaultSyncInterval    = 5 * time.Minute
	defaultLogLevel        = "debug"
	defaultLogFile         = "vedicas.log"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			PasswordCost:  defaultPasswordCost,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
			Local: Local{
				Path:           defaultLocalPath,
				KeyringService: defaultKeyringService,
			},
			Cache: Cache{TTL: defaultCacheTTL},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{SyncInterval: defaultSyncInterval},
		Log: Log{
			Level: defaultLogLevel,
			File:  defaultLogFile,
		},
	}
}
