// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote side of the calm-journal client: the
// document database the local cache mirrors, and the probe that decides
// whether that database is reachable right now.
//
// [RemoteStore] is implemented over a REST document API ([NewHTTPRemoteStore]),
// directly over MongoDB ([NewMongoRemoteStore]) and in process
// ([NewMemoryRemoteStore]) for development and tests.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// driver errors so callers can use [errors.Is] regardless of the backend
// (e.g. [ErrNotFound] for a missing document).
package adapter

import (
	"context"

	"github.com/MKhiriev/calm-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is a hierarchical document database addressed by
// slash-separated paths. Collection paths have an odd number of segments
// ("users/u1/thoughts"), document paths an even number ("users/u1").
type RemoteStore interface {
	// Create adds doc to the collection at collectionPath and returns the
	// server-assigned document ID.
	Create(ctx context.Context, collectionPath string, doc models.Document) (string, error)

	// Read fetches the document at path. Returns [ErrNotFound] (wrapped) when
	// no document exists there.
	Read(ctx context.Context, path string) (models.Document, error)

	// ListCollection returns every document of the collection at
	// collectionPath. An unknown collection yields an empty slice.
	ListCollection(ctx context.Context, collectionPath string) ([]models.IdentifiedDocument, error)
}

// ConnectivityProbe reports whether the remote store can currently be
// reached. Implementations must not block longer than the context allows and
// must answer false on any internal failure.
type ConnectivityProbe interface {
	IsConnected(ctx context.Context) bool
}
