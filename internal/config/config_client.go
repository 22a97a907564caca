package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey seals the persisted session token.
	HashKey string
	// KeepSessionOnUnauthorized disables logout on a 401 response.
	KeepSessionOnUnauthorized bool
	// LogFile is the dashboard log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the timeout of every backend request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	ExpiryCheckInterval   time.Duration
	DraftAutosaveInterval time.Duration
}

// ClientConfig is the validated configuration of the client binaries.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers

	// Args holds the positional arguments left after flag parsing
	// (salesctl subcommands).
	Args []string
}

// GetClientConfig builds and validates the client configuration from args
// (os.Args[1:]) and the process environment.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg, rest)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig, args []string) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:                   cfg.App.HashKey,
			KeepSessionOnUnauthorized: cfg.App.KeepSessionOnUnauthorized,
			LogFile:                   cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			ExpiryCheckInterval:   cfg.Workers.ExpiryCheckInterval,
			DraftAutosaveInterval: cfg.Workers.DraftAutosaveInterval,
		},
		Args: args,
	}
}
