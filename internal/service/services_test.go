package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/calm-journal/internal/adapter"
	"github.com/MKhiriev/calm-journal/internal/config"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/internal/store"
	"github.com/MKhiriev/calm-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientServices_Wiring(t *testing.T) {
	ctx := context.Background()
	storages, err := store.NewClientStorages(config.ClientCache{Driver: config.CacheDriverFile, DSN: store.InMemoryDSN}, logger.Nop())
	require.NoError(t, err)
	remotes, err := adapter.NewClientRemotes(ctx, config.ClientAdapter{Kind: config.AdapterKindMemory}, logger.Nop())
	require.NoError(t, err)

	svcs := NewClientServices(storages, remotes, config.ClientWorkers{SyncInterval: time.Minute}, logger.Nop())
	require.NotNil(t, svcs.Identity)
	require.NotNil(t, svcs.Data)
	require.NotNil(t, svcs.Journal)
	require.NotNil(t, svcs.SyncJob)

	svcs.Identity.SignIn(models.Identity{UID: "u1"})
	id, err := svcs.Journal.AddEntry(ctx, models.EntryThoughts, models.Document{"text": "hello"})
	require.NoError(t, err)

	res := svcs.Data.GetDocument(ctx, "users/u1/thoughts/"+id)
	assert.Equal(t, models.SourceRemote, res.Source)
	assert.Equal(t, "hello", res.Value["text"])
}
