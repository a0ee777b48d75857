package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"log_level": "info", "log_file": "j.log"},
		"storage": map[string]any{"cache": map[string]any{"driver": "sqlite", "dsn": "j.db"}},
		"adapter": map[string]any{
			"kind":            "http",
			"http_address":    "http://localhost:8080",
			"token":           "t",
			"request_timeout": "4s",
			"probe_url":       "http://probe",
		},
		"workers": map[string]any{"sync_interval": "10m", "connectivity_poll_interval": 1000000000},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "j.log", cfg.App.LogFile)
	assert.Equal(t, "sqlite", cfg.Storage.Cache.Driver)
	assert.Equal(t, "j.db", cfg.Storage.Cache.DSN)
	assert.Equal(t, "http", cfg.Adapter.Kind)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "t", cfg.Adapter.Token)
	assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "http://probe", cfg.Adapter.ProbeURL)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, time.Second, cfg.Workers.ConnectivityPollInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_RoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))

	var back Duration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)
}
