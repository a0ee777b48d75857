package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayerWins verifies that a non-zero field in a later layer
// overrides the earlier one while zero fields keep the earlier value.
func TestBuild_LaterLayerWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{Cache: Cache{Driver: CacheDriverBolt}},
	})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, CacheDriverBolt, cfg.Storage.Cache.Driver)
	assert.Equal(t, "journal.db", cfg.Storage.Cache.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
}

func TestBuild_FullChain(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"kind": "http", "http_address": "https://journal.example.com"},
		"workers": map[string]any{"sync_interval": "1m"},
	})
	t.Setenv("STORAGE_CACHE_DRIVER", "file")
	t.Setenv("STORAGE_CACHE_DSN", "/tmp/journal.json")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-c", jsonPath, "-log-level", "warn"}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, CacheDriverFile, cfg.Storage.Cache.Driver)
	assert.Equal(t, "/tmp/journal.json", cfg.Storage.Cache.DSN)
	assert.Equal(t, AdapterKindHTTP, cfg.Adapter.Kind)
	assert.Equal(t, "https://journal.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 15*time.Second, cfg.Workers.ConnectivityPollInterval)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	clientCfg := newClientConfig(cfg)
	assert.NoError(t, clientCfg.validate())
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestWithFlags_UnknownFlag(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-nope"}).build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
