package config

import (
	"fmt"
	"time"
)

// ClientApp holds process-level client settings.
type ClientApp struct {
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFile is the log destination; empty means next to the executable.
	LogFile string
}

// ClientAdapter holds settings used by the remote store and the probe.
type ClientAdapter struct {
	// Kind is one of the AdapterKind* constants.
	Kind string
	// HTTPAddress is the REST document API base URL.
	HTTPAddress string
	// Token is an optional bearer ID token.
	Token string
	// MongoURI is the MongoDB connection string.
	MongoURI string
	// MongoDatabase is the MongoDB database name.
	MongoDatabase string
	// RequestTimeout is the default timeout for outbound remote calls.
	RequestTimeout time.Duration
	// ProbeURL is the reachability check endpoint.
	ProbeURL string
}

// ClientCache contains local cache settings.
type ClientCache struct {
	// Driver is one of the CacheDriver* constants.
	Driver string
	// DSN is the database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Cache holds local cache settings.
	Cache ClientCache
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often pending writes are pushed.
	SyncInterval time.Duration
	// ConnectivityPollInterval defines how often connectivity is checked.
	ConnectivityPollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			Kind:           cfg.Adapter.Kind,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Token:          cfg.Adapter.Token,
			MongoURI:       cfg.Adapter.MongoURI,
			MongoDatabase:  cfg.Adapter.MongoDatabase,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			ProbeURL:       cfg.Adapter.ProbeURL,
		},
		Storage: ClientStorage{
			Cache: ClientCache{
				Driver: cfg.Storage.Cache.Driver,
				DSN:    cfg.Storage.Cache.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:             cfg.Workers.SyncInterval,
			ConnectivityPollInterval: cfg.Workers.ConnectivityPollInterval,
		},
	}
}
