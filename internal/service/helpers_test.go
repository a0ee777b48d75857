package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/calm-journal/internal/adapter"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/internal/store"
	"github.com/MKhiriev/calm-journal/models"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// countingRemote counts every call that reaches the in-memory remote store.
type countingRemote struct {
	*adapter.MemoryRemoteStore
	calls atomic.Int64
}

func (c *countingRemote) Create(ctx context.Context, collectionPath string, doc models.Document) (string, error) {
	c.calls.Add(1)
	return c.MemoryRemoteStore.Create(ctx, collectionPath, doc)
}

func (c *countingRemote) Read(ctx context.Context, path string) (models.Document, error) {
	c.calls.Add(1)
	return c.MemoryRemoteStore.Read(ctx, path)
}

func (c *countingRemote) ListCollection(ctx context.Context, collectionPath string) ([]models.IdentifiedDocument, error) {
	c.calls.Add(1)
	return c.MemoryRemoteStore.ListCollection(ctx, collectionPath)
}

type fixture struct {
	svc      DataService
	remote   *countingRemote
	cache    store.LocalCache
	probe    *adapter.StaticProbe
	identity *SessionIdentity
}

// newFixture builds a data service over the memory remote and an in-memory
// file cache, signed in as u1.
func newFixture(t *testing.T, online bool) *fixture {
	t.Helper()

	cache, err := store.NewFileCache(store.InMemoryDSN)
	require.NoError(t, err)

	f := &fixture{
		remote:   &countingRemote{MemoryRemoteStore: adapter.NewMemoryRemoteStore()},
		cache:    cache,
		probe:    adapter.NewStaticProbe(online),
		identity: NewSessionIdentity(nil),
	}
	f.identity.SignIn(models.Identity{UID: "u1", Email: "u1@example.com"})
	f.svc = NewDataService(f.remote, f.cache, f.probe, f.identity, logger.Nop(),
		WithClock(func() time.Time { return testNow }))

	return f
}

func (f *fixture) cacheKeys(t *testing.T) []string {
	t.Helper()
	keys, err := f.cache.ListKeys(context.Background())
	require.NoError(t, err)
	return keys
}

func (f *fixture) cached(t *testing.T, key string) string {
	t.Helper()
	raw, err := f.cache.Get(context.Background(), key)
	require.NoError(t, err)
	return string(raw)
}

func (f *fixture) hasPendingKeys(t *testing.T) bool {
	t.Helper()
	for _, k := range f.cacheKeys(t) {
		if _, _, ok := parsePendingKey(k); ok {
			return true
		}
	}
	return false
}
