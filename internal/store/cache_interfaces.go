// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=cache_interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalCache is the on-device key-value store used both as a read-through
// cache of remote documents and as the staging area for pending writes.
//
// Values are opaque serialized documents (JSON). Implementations must be safe
// for concurrent use.
type LocalCache interface {
	// Get returns the value stored under key, or [ErrCacheMiss] if the key
	// does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// ListKeys returns every key currently stored, sorted ascending.
	ListKeys(ctx context.Context) ([]string, error)

	// Close releases the underlying storage.
	Close() error
}
