// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the offline-first data layer of the
// calm-journal client.
//
// [DataService] mediates between the local cache and the remote document
// store: reads and writes go remote when the device is online and degrade to
// the cache otherwise, and writes made offline are staged under temporary IDs
// until [DataService.SyncPendingChanges] uploads them. [JournalService] is the
// typed layer the journal screens use, and [SyncJob] drives synchronisation
// in the background.
package service

import (
	"context"

	"github.com/MKhiriev/calm-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityProvider reports the currently authenticated user.
type IdentityProvider interface {
	// Current returns the signed-in identity, or false when nobody is signed
	// in.
	Current(ctx context.Context) (models.Identity, bool)
}

// DataService is the offline-first document layer. Apart from
// [ErrUnauthenticated] from AddDocument, no method returns an error: remote
// and cache failures are logged and resolved into a cache fallback or an
// empty result. Reads report where their value came from via
// [models.Result].
type DataService interface {
	// IsOnline reports whether the remote store is reachable. Probe failures
	// count as offline.
	IsOnline(ctx context.Context) bool

	// AddDocument stamps data with "createdAt" and "userId" and creates it in
	// the collection at collectionPath. Online, the remote ID is returned and
	// the document is mirrored under "<collectionPath>_<id>". Offline or on
	// any remote failure the document is staged under
	// "<collectionPath>_temp_<millis>" and the temporary ID is returned.
	AddDocument(ctx context.Context, collectionPath string, data models.Document) (string, error)

	// GetDocument reads the document at path remotely when online, mirroring
	// it into the cache under path; otherwise, or when the remote read fails
	// or finds nothing, the cached copy is returned.
	GetDocument(ctx context.Context, path string) models.Result[models.Document]

	// GetCollection returns the cached snapshot of the collection if one
	// exists. Otherwise, when online, the collection is fetched, each
	// document annotated with its "id", and the list cached. The value is
	// never nil.
	GetCollection(ctx context.Context, collectionPath string) models.Result[[]models.Document]

	// SyncPendingChanges uploads every staged write. Items are independent:
	// a failing item stays queued and does not stop the others. Concurrent
	// calls are serialised.
	SyncPendingChanges(ctx context.Context) models.SyncReport

	// PendingWrites lists the staged writes currently in the cache.
	PendingWrites(ctx context.Context) []models.PendingWrite

	// GetUserData returns the profile at "users/<userID>", cache first.
	GetUserData(ctx context.Context, userID string) models.Result[models.Document]

	// SaveAuthState persists identity under "authUser" with the current time
	// as last login.
	SaveAuthState(ctx context.Context, identity models.Identity)

	// GetAuthState returns the persisted identity snapshot.
	GetAuthState(ctx context.Context) (models.AuthState, bool)

	// VerifyAdmin reports whether userID is an administrator. A cached
	// positive verdict for the same user is trusted; otherwise, when online,
	// "admins/<userID>" is consulted. Any doubt yields false.
	VerifyAdmin(ctx context.Context, userID string) bool

	// SaveAdminAuth caches an admin verdict under "adminAuth".
	SaveAdminAuth(ctx context.Context, auth models.AdminAuth)

	// ClearAdminAuth overwrites the cached admin verdict with null.
	ClearAdminAuth(ctx context.Context)
}

// JournalService stores and lists journal entries of the signed-in user.
type JournalService interface {
	// AddEntry writes entry to users/<uid>/<kind> and returns its ID, which is
	// temporary when the write was staged offline.
	AddEntry(ctx context.Context, kind models.EntryKind, entry models.Document) (string, error)

	// ListEntries returns the user's entries of the given kind followed by
	// any entries still waiting to be synced.
	ListEntries(ctx context.Context, kind models.EntryKind) (models.Result[[]models.Document], error)
}

// SyncJob periodically drains the pending-write queue and reacts to the
// device coming back online.
type SyncJob interface {
	// Start stops any running job and launches a new one bound to ctx.
	Start(ctx context.Context)

	// Stop cancels the job and blocks until it has exited. Safe to call when
	// the job is not running.
	Stop()
}
