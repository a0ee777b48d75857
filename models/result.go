// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Source tells where a value returned by the sync layer came from.
type Source int

const (
	// SourceNone means neither the remote store nor the cache had a value and
	// the zero value (nil or an empty slice) was returned.
	SourceNone Source = iota
	// SourceRemote means the value was freshly read from the remote store.
	SourceRemote
	// SourceCache means the value was served from the local cache.
	SourceCache
)

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceCache:
		return "cache"
	default:
		return "none"
	}
}

// Result wraps a value returned by a read that never fails.
//
// Recovered holds the error that forced a fallback to the cache, if any. It is
// informational: the layer already logged it and the caller is not expected
// to act on it.
type Result[T any] struct {
	Value     T
	Source    Source
	Recovered error
}

// Fallback reports whether the value did not come from a fresh remote read.
func (r Result[T]) Fallback() bool {
	return r.Source != SourceRemote
}

// Found reports whether any source produced a value.
func (r Result[T]) Found() bool {
	return r.Source != SourceNone
}
