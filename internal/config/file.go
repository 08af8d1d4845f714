package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of a config file. Durations are written
// as strings ("30s", "24h").
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		PasswordCost  int      `json:"password_cost" yaml:"password_cost"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn" yaml:"dsn"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns" yaml:"max_idle_conns"`
		} `json:"db" yaml:"db"`
		Local struct {
			Path           string `json:"path" yaml:"path"`
			KeyringService string `json:"keyring_service" yaml:"keyring_service"`
		} `json:"local" yaml:"local"`
		Cache struct {
			RedisAddress  string   `json:"redis_address" yaml:"redis_address"`
			RedisPassword string   `json:"redis_password" yaml:"redis_password"`
			RedisDB       int      `json:"redis_db" yaml:"redis_db"`
			TTL           Duration `json:"ttl" yaml:"ttl"`
		} `json:"cache" yaml:"cache"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		ChartAPIAddress string   `json:"chart_api_address" yaml:"chart_api_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval" yaml:"sync_interval"`
	} `json:"workers" yaml:"workers"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

// parseFile decodes a JSON or YAML config file chosen by extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".json", "":
		err = json.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			PasswordCost:  fc.App.PasswordCost,
			Version:       fc.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          fc.Storage.DB.DSN,
				MaxOpenConns: fc.Storage.DB.MaxOpenConns,
				MaxIdleConns: fc.Storage.DB.MaxIdleConns,
			},
			Local: Local{
				Path:           fc.Storage.Local.Path,
				KeyringService: fc.Storage.Local.KeyringService,
			},
			Cache: Cache{
				RedisAddress:  fc.Storage.Cache.RedisAddress,
				RedisPassword: fc.Storage.Cache.RedisPassword,
				RedisDB:       fc.Storage.Cache.RedisDB,
				TTL:           time.Duration(fc.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:     fc.Adapter.HTTPAddress,
			ChartAPIAddress: fc.Adapter.ChartAPIAddress,
			RequestTimeout:  time.Duration(fc.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval: time.Duration(fc.Workers.SyncInterval),
		},
		Log: Log{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}
}

// Duration accepts "1h30m" strings or integer nanoseconds in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if n, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		*d = Duration(n)
		return nil
	}
	return d.parse(node.Value)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
