package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		Cache struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"cache,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		Kind           string   `json:"kind"`
		HTTPAddress    string   `json:"http_address"`
		Token          string   `json:"token"`
		MongoURI       string   `json:"mongo_uri"`
		MongoDatabase  string   `json:"mongo_database"`
		RequestTimeout Duration `json:"request_timeout"`
		ProbeURL       string   `json:"probe_url"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval             Duration `json:"sync_interval"`
		ConnectivityPollInterval Duration `json:"connectivity_poll_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Storage: Storage{
			Cache: Cache{
				Driver: jsonCfg.Storage.Cache.Driver,
				DSN:    jsonCfg.Storage.Cache.DSN,
			},
		},
		Adapter: Adapter{
			Kind:           jsonCfg.Adapter.Kind,
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			Token:          jsonCfg.Adapter.Token,
			MongoURI:       jsonCfg.Adapter.MongoURI,
			MongoDatabase:  jsonCfg.Adapter.MongoDatabase,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			ProbeURL:       jsonCfg.Adapter.ProbeURL,
		},
		Workers: Workers{
			SyncInterval:             time.Duration(jsonCfg.Workers.SyncInterval),
			ConnectivityPollInterval: time.Duration(jsonCfg.Workers.ConnectivityPollInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
