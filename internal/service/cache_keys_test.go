package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePendingKey(t *testing.T) {
	tests := []struct {
		key        string
		collection string
		tempID     string
		ok         bool
	}{
		{key: "users/u1/thoughts_temp_1700000000000", collection: "users/u1/thoughts", tempID: "temp_1700000000000", ok: true},
		{key: "c_temp_1", collection: "c", tempID: "temp_1", ok: true},
		{key: "my_coll_temp_5", collection: "my_coll", tempID: "temp_5", ok: true},
		{key: "users/u1/thoughts_abc123", ok: false},
		{key: "users/u1/thoughts_temp_", ok: false},
		{key: "users/u1/thoughts_temp_12x", ok: false},
		{key: "temp_1700000000000", ok: false},
		{key: "authUser", ok: false},
		{key: "adminAuth", ok: false},
		{key: "users/u1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c, id, ok := parsePendingKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.collection, c)
			assert.Equal(t, tt.tempID, id)
		})
	}
}

func TestTempIDGenerator_Monotonic(t *testing.T) {
	now := time.UnixMilli(1000)
	g := &tempIDGenerator{now: func() time.Time { return now }}

	assert.Equal(t, "temp_1000", g.Next())
	assert.Equal(t, "temp_1001", g.Next())

	now = time.UnixMilli(5000)
	assert.Equal(t, "temp_5000", g.Next())

	now = time.UnixMilli(4000)
	assert.Equal(t, "temp_5001", g.Next(), "clock going backwards never reuses an id")
}

func TestTempIDGenerator_Concurrent(t *testing.T) {
	g := &tempIDGenerator{now: func() time.Time { return time.UnixMilli(42) }}

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
		wg   sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 50)
}

func TestCacheKeyHelpers(t *testing.T) {
	assert.Equal(t, "users/u1/thoughts_abc", documentKey("users/u1/thoughts", "abc"))
	assert.Equal(t, "users/u1", userPath("u1"))
	assert.Equal(t, "admins/u1", adminPath("u1"))
}
