// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/calm-journal/internal/logger"
)

const cacheTable = "cache_entries"

type sqliteCache struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
}

// NewSQLiteCache returns a [LocalCache] stored in the cache_entries table of
// db. The schema must already be migrated.
func NewSQLiteCache(db *DB) LocalCache {
	return &sqliteCache{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
	}
}

func (c *sqliteCache) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Select("value").
		From(cacheTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = c.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteCache.Get").
			Str("key", key).
			Msg("failed to read cache entry")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (c *sqliteCache) Set(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Insert(cacheTable).
		Columns("key", "value", "updated_at").
		Values(key, value, c.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteCache.Set").
			Str("key", key).
			Msg("failed to upsert cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *sqliteCache) Remove(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Delete(cacheTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteCache.Remove").
			Str("key", key).
			Msg("failed to delete cache entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (c *sqliteCache) ListKeys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder.
		Select("key").
		From(cacheTable).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqliteCache.ListKeys").Msg("failed to query cache keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			log.Err(err).Str("func", "sqliteCache.ListKeys").Msg("failed to scan cache key")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "sqliteCache.ListKeys").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (c *sqliteCache) Close() error {
	return c.db.Close()
}
