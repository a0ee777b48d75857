package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// InMemoryDSN keeps a file cache purely in memory.
const InMemoryDSN = ":memory:"

type fileCache struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

type filePersistedState struct {
	Entries map[string]json.RawMessage `json:"entries"`
}

// NewFileCache returns a [LocalCache] held in memory and rewritten to the JSON
// file at path after every mutation. An empty path or ":memory:" disables
// persistence. Values must be valid JSON.
func NewFileCache(path string) (LocalCache, error) {
	if path == "" {
		path = InMemoryDSN
	}

	c := &fileCache{
		path:     path,
		inMemory: path == InMemoryDSN || path == "memory",
		entries:  make(map[string]json.RawMessage),
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *fileCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}

	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (c *fileCache) Set(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("file cache value for %q is not valid JSON", key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make(json.RawMessage, len(value))
	copy(stored, value)

	next := c.cloneEntries()
	next[key] = stored

	return c.commit(next)
}

func (c *fileCache) Remove(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return nil
	}

	next := c.cloneEntries()
	delete(next, key)

	return c.commit(next)
}

func (c *fileCache) ListKeys(_ context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys, nil
}

func (c *fileCache) Close() error {
	return nil
}

func (c *fileCache) load() error {
	if c.inMemory {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local cache file: %w", err)
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local cache file: %w", err)
	}

	if st.Entries != nil {
		c.entries = st.Entries
	}

	return nil
}

// cloneEntries copies the entry map; values are never mutated in place, so
// they are shared. Must be called with c.mu held.
func (c *fileCache) cloneEntries() map[string]json.RawMessage {
	next := make(map[string]json.RawMessage, len(c.entries)+1)
	for k, v := range c.entries {
		next[k] = v
	}
	return next
}

// commit writes next to disk and only then makes it the live state. Must be
// called with c.mu held.
func (c *fileCache) commit(next map[string]json.RawMessage) error {
	if err := c.persist(next); err != nil {
		return err
	}
	c.entries = next
	return nil
}

func (c *fileCache) persist(entries map[string]json.RawMessage) error {
	if c.inMemory {
		return nil
	}

	dir := filepath.Dir(c.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create local cache dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Entries: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode local cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write local cache file: %w", err)
	}
	if err = os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("replace local cache file: %w", err)
	}

	return nil
}
