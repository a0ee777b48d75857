package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-journal/internal/config"
	"github.com/MKhiriev/calm-journal/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// Cache is the local key-value cache backing offline reads and pending
	// writes.
	Cache LocalCache
}

// NewClientStorages initialises the client storage layer for cfg.Driver:
//   - "sqlite": opens the database file at cfg.DSN, runs migrations and
//     wraps it in a [LocalCache];
//   - "bolt": opens a bbolt database at cfg.DSN;
//   - "file": loads the JSON file at cfg.DSN (":memory:" for none).
//
// Returns [ErrUnknownCacheDriver] for any other driver.
func NewClientStorages(cfg config.ClientCache, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		cache LocalCache
		err   error
	)

	switch cfg.Driver {
	case config.CacheDriverSQLite:
		var db *DB
		db, err = NewConnectSQLite(context.Background(), cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		cache = NewSQLiteCache(db)
	case config.CacheDriverBolt:
		cache, err = NewBoltCache(cfg.DSN)
	case config.CacheDriverFile:
		cache, err = NewFileCache(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCacheDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cfg.Driver, err)
	}

	return &ClientStorages{Cache: cache}, nil
}

// Close releases every storage handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.Cache == nil {
		return nil
	}
	return s.Cache.Close()
}
