// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Cache drivers understood by the storage layer.
const (
	CacheDriverSQLite = "sqlite"
	CacheDriverBolt   = "bolt"
	CacheDriverFile   = "file"
)

// Remote store kinds understood by the adapter layer.
const (
	AdapterKindHTTP   = "http"
	AdapterKindMongo  = "mongo"
	AdapterKindMemory = "memory"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the on-device cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds configuration for the remote document store and the
	// connectivity probe.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the file the client appends its logs to. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for on-device storage.
type Storage struct {
	// Cache holds the local key-value cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// Cache holds settings for the local key-value cache.
type Cache struct {
	// Driver selects the backend: "sqlite", "bolt" or "file".
	// Env: STORAGE_CACHE_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the path of the database file. The "file" driver also accepts
	// ":memory:".
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`
}

// Adapter holds configuration for the remote document store.
type Adapter struct {
	// Kind selects the remote backend: "http", "mongo" or "memory".
	// Env: ADAPTER_KIND
	Kind string `env:"KIND"`

	// HTTPAddress is the base URL of the REST document API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Token is an optional bearer ID token for the REST document API. When
	// set, the identity it carries becomes the signed-in user at startup.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// MongoURI is the connection string for the "mongo" backend.
	// Env: ADAPTER_MONGO_URI
	MongoURI string `env:"MONGO_URI"`

	// MongoDatabase is the database name for the "mongo" backend.
	// Env: ADAPTER_MONGO_DATABASE
	MongoDatabase string `env:"MONGO_DATABASE"`

	// RequestTimeout bounds every outbound remote call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeURL is fetched to decide whether the internet is reachable.
	// Env: ADAPTER_PROBE_URL
	ProbeURL string `env:"PROBE_URL"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// SyncInterval is how often pending writes are pushed.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// ConnectivityPollInterval is how often connectivity is re-checked to
	// detect an offline to online transition.
	// Env: WORKERS_CONNECTIVITY_POLL_INTERVAL
	ConnectivityPollInterval time.Duration `env:"CONNECTIVITY_POLL_INTERVAL"`
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "info"},
		Storage: Storage{Cache: Cache{
			Driver: CacheDriverSQLite,
			DSN:    "journal.db",
		}},
		Adapter: Adapter{
			Kind:           AdapterKindMemory,
			RequestTimeout: 10 * time.Second,
			ProbeURL:       "https://clients3.google.com/generate_204",
		},
		Workers: Workers{
			SyncInterval:             5 * time.Minute,
			ConnectivityPollInterval: 15 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. Command-line flags are read from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
