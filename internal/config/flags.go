package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-cache-driver local cache driver (sqlite, bolt, file)
//	-d local cache DSN (database file path)
//	-adapter remote store kind (http, mongo, memory)
//	-a remote document API base URL
//	-token bearer ID token
//	-mongo-uri MongoDB connection string
//	-mongo-db MongoDB database name
//	-request-timeout remote request timeout (e.g. "10s")
//	-probe-url reachability probe URL
//	-sync-interval pending write sync interval (e.g. "5m")
//	-poll-interval connectivity poll interval (e.g. "15s")
//	-log-level log level
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		cfg            StructuredConfig
		requestTimeout time.Duration
		syncInterval   time.Duration
		pollInterval   time.Duration
	)

	fs := flag.NewFlagSet("calm-journal", flag.ContinueOnError)
	fs.StringVar(&cfg.Storage.Cache.Driver, "cache-driver", "", "Local cache driver: sqlite, bolt or file")
	fs.StringVar(&cfg.Storage.Cache.DSN, "d", "", "Local cache DSN")
	fs.StringVar(&cfg.Adapter.Kind, "adapter", "", "Remote store kind: http, mongo or memory")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Remote document API base URL")
	fs.StringVar(&cfg.Adapter.Token, "token", "", "Bearer ID token")
	fs.StringVar(&cfg.Adapter.MongoURI, "mongo-uri", "", "MongoDB connection string")
	fs.StringVar(&cfg.Adapter.MongoDatabase, "mongo-db", "", "MongoDB database name")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g. 10s)")
	fs.StringVar(&cfg.Adapter.ProbeURL, "probe-url", "", "Reachability probe URL")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Pending write sync interval (e.g. 5m)")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Connectivity poll interval (e.g. 15s)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Adapter.RequestTimeout = requestTimeout
	cfg.Workers.SyncInterval = syncInterval
	cfg.Workers.ConnectivityPollInterval = pollInterval

	return &cfg, nil
}
