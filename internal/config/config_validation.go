// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig]. Semantic checks live on
// [ClientConfig]; here only the JSON path is sanity-checked.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.JSONFilePath) != cfg.JSONFilePath {
		return fmt.Errorf("config file path has surrounding whitespace: %q", cfg.JSONFilePath)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Cache.Driver {
	case CacheDriverSQLite, CacheDriverBolt:
		if cfg.Storage.Cache.DSN == "" || strings.Contains(cfg.Storage.Cache.DSN, "memory") {
			return fmt.Errorf("%w: %s driver needs a file DSN", ErrInvalidStorageConfigs, cfg.Storage.Cache.Driver)
		}
	case CacheDriverFile:
		if cfg.Storage.Cache.DSN == "" {
			return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Cache.Driver)
	}

	switch cfg.Adapter.Kind {
	case AdapterKindHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: http adapter needs an address", ErrInvalidAdapterConfigs)
		}
	case AdapterKindMongo:
		if cfg.Adapter.MongoURI == "" || cfg.Adapter.MongoDatabase == "" {
			return fmt.Errorf("%w: mongo adapter needs uri and database", ErrInvalidAdapterConfigs)
		}
	case AdapterKindMemory:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAdapterConfigs, cfg.Adapter.Kind)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.ConnectivityPollInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
