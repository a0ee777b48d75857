package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketCache = []byte("cache")

type boltCache struct {
	db *bolt.DB
}

// NewBoltCache opens or creates a bbolt database at path and returns it as a
// [LocalCache]. All entries live in a single bucket.
func NewBoltCache(path string) (LocalCache, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create cache directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCache)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket %s: %w", bucketCache, err)
	}

	return &boltCache{db: db}, nil
}

func (c *boltCache) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketCache).Get([]byte(key))
		if data == nil {
			return ErrCacheMiss
		}
		// data is only valid inside the transaction
		value = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (c *boltCache) Set(_ context.Context, key string, value []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCache).Put([]byte(key), value)
	})
}

func (c *boltCache) Remove(_ context.Context, key string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCache).Delete([]byte(key))
	})
}

// ListKeys relies on bbolt iterating keys in byte order.
func (c *boltCache) ListKeys(_ context.Context) ([]string, error) {
	keys := make([]string, 0)
	err := c.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCache).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (c *boltCache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
