// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/calm-journal/internal/config"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every backend must satisfy the same LocalCache contract.
func TestLocalCacheContract(t *testing.T) {
	backends := map[string]func(t *testing.T) LocalCache{
		"sqlite": func(t *testing.T) LocalCache {
			s, err := NewClientStorages(config.ClientCache{
				Driver: config.CacheDriverSQLite,
				DSN:    filepath.Join(t.TempDir(), "cache.db"),
			}, logger.Nop())
			require.NoError(t, err)
			return s.Cache
		},
		"bolt": func(t *testing.T) LocalCache {
			c, err := NewBoltCache(filepath.Join(t.TempDir(), "cache.bolt"))
			require.NoError(t, err)
			return c
		},
		"file": func(t *testing.T) LocalCache {
			c, err := NewFileCache(filepath.Join(t.TempDir(), "cache.json"))
			require.NoError(t, err)
			return c
		},
		"memory": func(t *testing.T) LocalCache {
			c, err := NewFileCache(InMemoryDSN)
			require.NoError(t, err)
			return c
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			cache := open(t)
			defer cache.Close()

			_, err := cache.Get(ctx, "authUser")
			assert.ErrorIs(t, err, ErrCacheMiss)

			require.NoError(t, cache.Set(ctx, "users/u1/thoughts_temp_1", []byte(`{"text":"a"}`)))
			require.NoError(t, cache.Set(ctx, "authUser", []byte(`{"uid":"u1"}`)))
			require.NoError(t, cache.Set(ctx, "authUser", []byte(`{"uid":"u2"}`)))

			got, err := cache.Get(ctx, "authUser")
			require.NoError(t, err)
			assert.JSONEq(t, `{"uid":"u2"}`, string(got))

			keys, err := cache.ListKeys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"authUser", "users/u1/thoughts_temp_1"}, keys)

			require.NoError(t, cache.Remove(ctx, "users/u1/thoughts_temp_1"))
			require.NoError(t, cache.Remove(ctx, "never-existed"))

			keys, err = cache.ListKeys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"authUser"}, keys)
		})
	}
}

func TestFileCache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cache.json")

	c, err := NewFileCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "adminAuth", []byte(`{"uid":"u1","isAdmin":true}`)))

	reopened, err := NewFileCache(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "adminAuth")
	require.NoError(t, err)
	assert.JSONEq(t, `{"uid":"u1","isAdmin":true}`, string(got))
}

func TestFileCache_RejectsInvalidJSON(t *testing.T) {
	c, err := NewFileCache(InMemoryDSN)
	require.NoError(t, err)

	err = c.Set(context.Background(), "k", []byte("{oops"))
	assert.Error(t, err)
}

func TestFileCache_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileCache(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode local cache file")
}

func TestFileCache_FailedPersistLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.json")

	c, err := NewFileCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "kept", []byte(`{"a":1}`)))

	// a directory in place of the temp file makes every write fail
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	assert.Error(t, c.Set(ctx, "added", []byte(`{"b":2}`)))
	_, err = c.Get(ctx, "added")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.Error(t, c.Remove(ctx, "kept"))
	got, err := c.Get(ctx, "kept")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got))

	keys, err := c.ListKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"kept"}, keys)
}

func TestBoltCache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.bolt")

	c, err := NewBoltCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "users/u1", []byte(`{"name":"A"}`)))
	require.NoError(t, c.Close())

	reopened, err := NewBoltCache(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "users/u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"A"}`, string(got))
}

func TestNewClientStorages_UnknownDriver(t *testing.T) {
	_, err := NewClientStorages(config.ClientCache{Driver: "redis", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownCacheDriver)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
