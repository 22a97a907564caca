// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before the client view is derived from it.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the local secret, session policy and log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the local sqlite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the backend address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the intervals of the background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the optional path to a dotenv file.
	// Env: ENV_FILE, flag: -env-file.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level settings.
type App struct {
	// HashKey is the local secret the persisted session token is sealed
	// with. Changing it invalidates the stored session.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// KeepSessionOnUnauthorized disables the automatic logout on a 401
	// response.
	// Env: APP_KEEP_SESSION_ON_UNAUTHORIZED
	KeepSessionOnUnauthorized bool `env:"KEEP_SESSION_ON_UNAUTHORIZED"`

	// LogFile is where the dashboard writes its logs; stdout belongs to the
	// terminal UI.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the local sqlite settings.
type DB struct {
	// DSN is the sqlite file path (e.g. "sales-admin.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings of the REST backend connection.
type Adapter struct {
	// HTTPAddress is the backend base URL or host:port.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every backend request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the intervals of the background jobs.
type Workers struct {
	// ExpiryCheckInterval is how often the session token expiry is checked.
	// Env: WORKERS_EXPIRY_CHECK_INTERVAL
	ExpiryCheckInterval time.Duration `env:"EXPIRY_CHECK_INTERVAL"`

	// DraftAutosaveInterval is how often in-progress drafts are snapshotted.
	// Env: WORKERS_DRAFT_AUTOSAVE_INTERVAL
	DraftAutosaveInterval time.Duration `env:"DRAFT_AUTOSAVE_INTERVAL"`
}

// Defaults applied after every other source.
const (
	DefaultDSN                   = "sales-admin.db"
	DefaultRequestTimeout        = 15 * time.Second
	DefaultExpiryCheckInterval   = time.Minute
	DefaultDraftAutosaveInterval = 30 * time.Second
	DefaultEnvFile               = ".env"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Workers: Workers{
			ExpiryCheckInterval:   DefaultExpiryCheckInterval,
			DraftAutosaveInterval: DefaultDraftAutosaveInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name; arguments
// left after flag parsing are returned as the second value.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withEnv().
		withDotEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.args, err
}
