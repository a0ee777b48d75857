package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/calm-journal/internal/adapter"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/internal/store"
	"github.com/MKhiriev/calm-journal/models"
)

type dataService struct {
	remote   adapter.RemoteStore
	cache    store.LocalCache
	probe    adapter.ConnectivityProbe
	identity IdentityProvider

	now     func() time.Time
	tempIDs *tempIDGenerator

	syncMu sync.Mutex

	logger *logger.Logger
}

// DataServiceOption customises a [DataService] built by [NewDataService].
type DataServiceOption func(*dataService)

// WithClock replaces time.Now as the source of "createdAt", "lastLogin" and
// temporary IDs.
func WithClock(now func() time.Time) DataServiceOption {
	return func(s *dataService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewDataService wires the offline-first data layer over its collaborators.
func NewDataService(
	remote adapter.RemoteStore,
	cache store.LocalCache,
	probe adapter.ConnectivityProbe,
	identity IdentityProvider,
	logger *logger.Logger,
	opts ...DataServiceOption,
) DataService {
	s := &dataService{
		remote:   remote,
		cache:    cache,
		probe:    probe,
		identity: identity,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tempIDs = &tempIDGenerator{now: s.now}

	return s
}

func (s *dataService) IsOnline(ctx context.Context) (online bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("func", "*dataService.IsOnline").Interface("panic", r).
				Msg("connectivity probe panicked, assuming offline")
			online = false
		}
	}()

	return s.probe.IsConnected(ctx)
}

func (s *dataService) AddDocument(ctx context.Context, collectionPath string, data models.Document) (string, error) {
	identity, ok := s.identity.Current(ctx)
	if !ok || identity.UID == "" {
		return "", ErrUnauthenticated
	}

	doc := data.Clone()
	if doc == nil {
		doc = models.Document{}
	}
	doc[models.FieldCreatedAt] = s.now().UTC().Format(time.RFC3339Nano)
	doc[models.FieldUserID] = identity.UID

	if s.IsOnline(ctx) {
		var id string
		err := safely(func() (err error) {
			id, err = s.remote.Create(ctx, collectionPath, doc)
			return err
		})
		if err == nil {
			s.mirrorJSON(ctx, documentKey(collectionPath, id), doc)
			return id, nil
		}
		s.logger.Err(err).Str("func", "*dataService.AddDocument").Str("collection", collectionPath).
			Msg("remote create failed, staging document locally")
	}

	tempID := s.tempIDs.Next()
	s.setJSON(ctx, documentKey(collectionPath, tempID), doc)
	s.logger.Debug().Str("collection", collectionPath).Str("temp_id", tempID).Msg("document staged for sync")

	return tempID, nil
}

func (s *dataService) GetDocument(ctx context.Context, path string) models.Result[models.Document] {
	var recovered error

	if s.IsOnline(ctx) {
		doc, err := s.remoteRead(ctx, path)
		if err == nil {
			s.mirrorJSON(ctx, path, doc)
			return models.Result[models.Document]{Value: doc, Source: models.SourceRemote}
		}
		recovered = err
		if !errors.Is(err, adapter.ErrNotFound) {
			s.logger.Err(err).Str("func", "*dataService.GetDocument").Str("path", path).
				Msg("remote read failed, falling back to cache")
		}
	}

	return s.cachedDocument(ctx, path, recovered)
}

func (s *dataService) GetCollection(ctx context.Context, collectionPath string) models.Result[[]models.Document] {
	var (
		cached    []models.Document
		recovered error
	)

	found, err := s.getJSON(ctx, collectionPath, &cached)
	if err != nil {
		recovered = err
	}
	if found && cached != nil {
		return models.Result[[]models.Document]{Value: cached, Source: models.SourceCache, Recovered: recovered}
	}

	if s.IsOnline(ctx) {
		var listed []models.IdentifiedDocument
		err = safely(func() (err error) {
			listed, err = s.remote.ListCollection(ctx, collectionPath)
			return err
		})
		if err == nil {
			docs := make([]models.Document, 0, len(listed))
			for _, d := range listed {
				docs = append(docs, d.Annotated())
			}
			s.mirrorJSON(ctx, collectionPath, docs)
			return models.Result[[]models.Document]{Value: docs, Source: models.SourceRemote}
		}
		recovered = errors.Join(recovered, err)
		s.logger.Err(err).Str("func", "*dataService.GetCollection").Str("collection", collectionPath).
			Msg("remote list failed")
	}

	return models.Result[[]models.Document]{Value: []models.Document{}, Source: models.SourceNone, Recovered: recovered}
}

func (s *dataService) SyncPendingChanges(ctx context.Context) models.SyncReport {
	s.syncMu.Lock()
	defer s.syncMu.Unlock()

	report := models.NewSyncReport()
	if !s.IsOnline(ctx) {
		report.Skipped = true
		return report
	}

	for _, pw := range s.pendingKeys(ctx) {
		id, err := s.syncOne(ctx, pw)
		if err != nil {
			report.Failed[pw.Key] = err
			s.logger.Err(err).Str("func", "*dataService.SyncPendingChanges").Str("key", pw.Key).
				Msg("pending write stays queued")
			continue
		}
		report.Synced[pw.Key] = id
	}

	if len(report.Synced)+len(report.Failed) > 0 {
		s.logger.Info().Int("synced", len(report.Synced)).Int("failed", len(report.Failed)).
			Msg("pending changes synced")
	}

	return report
}

// syncOne uploads a single staged write. Panics are turned into errors so
// one bad item cannot abort the pass.
func (s *dataService) syncOne(ctx context.Context, pw models.PendingWrite) (id string, err error) {
	err = safely(func() error {
		var doc models.Document
		found, err := s.getJSON(ctx, pw.Key, &doc)
		if err != nil {
			return fmt.Errorf("read pending write: %w", err)
		}
		if !found || doc == nil {
			return errEmptyPendingWrite
		}

		id, err = s.remote.Create(ctx, pw.CollectionPath, doc)
		if err != nil {
			return fmt.Errorf("upload pending write: %w", err)
		}

		if err = s.cache.Remove(ctx, pw.Key); err != nil {
			return fmt.Errorf("created remotely as %s but pending entry not removed: %w", id, err)
		}
		s.mirrorJSON(ctx, documentKey(pw.CollectionPath, id), doc)

		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *dataService) PendingWrites(ctx context.Context) []models.PendingWrite {
	keys := s.pendingKeys(ctx)
	out := make([]models.PendingWrite, 0, len(keys))

	for _, pw := range keys {
		var doc models.Document
		found, err := s.getJSON(ctx, pw.Key, &doc)
		if err != nil || !found || doc == nil {
			continue
		}
		pw.Document = doc
		out = append(out, pw)
	}

	return out
}

// pendingKeys lists staged-write keys without loading their documents.
func (s *dataService) pendingKeys(ctx context.Context) []models.PendingWrite {
	var keys []string
	err := safely(func() (err error) {
		keys, err = s.cache.ListKeys(ctx)
		return err
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*dataService.pendingKeys").Msg("failed to list cache keys")
		return nil
	}

	var out []models.PendingWrite
	for _, key := range keys {
		collectionPath, tempID, ok := parsePendingKey(key)
		if !ok {
			continue
		}
		out = append(out, models.PendingWrite{Key: key, CollectionPath: collectionPath, TempID: tempID})
	}

	return out
}

func (s *dataService) GetUserData(ctx context.Context, userID string) models.Result[models.Document] {
	key := userPath(userID)

	var (
		cached    models.Document
		recovered error
	)
	found, err := s.getJSON(ctx, key, &cached)
	if err != nil {
		recovered = err
	}
	if found && cached != nil {
		return models.Result[models.Document]{Value: cached, Source: models.SourceCache, Recovered: recovered}
	}

	if s.IsOnline(ctx) {
		doc, err := s.remoteRead(ctx, key)
		if err == nil {
			s.mirrorJSON(ctx, key, doc)
			return models.Result[models.Document]{Value: doc, Source: models.SourceRemote}
		}
		recovered = errors.Join(recovered, err)
		if !errors.Is(err, adapter.ErrNotFound) {
			s.logger.Err(err).Str("func", "*dataService.GetUserData").Str("user_id", userID).
				Msg("remote read failed")
		}
	}

	return models.Result[models.Document]{Source: models.SourceNone, Recovered: recovered}
}

func (s *dataService) SaveAuthState(ctx context.Context, identity models.Identity) {
	if identity.UID == "" {
		return
	}
	s.setJSON(ctx, keyAuthUser, models.NewAuthState(identity, s.now()))
}

func (s *dataService) GetAuthState(ctx context.Context) (models.AuthState, bool) {
	var state *models.AuthState
	found, _ := s.getJSON(ctx, keyAuthUser, &state)
	if !found || state == nil || state.UID == "" {
		return models.AuthState{}, false
	}
	return *state, true
}

func (s *dataService) VerifyAdmin(ctx context.Context, userID string) bool {
	if userID == "" {
		return false
	}

	var cached *models.AdminAuth
	found, _ := s.getJSON(ctx, keyAdminAuth, &cached)
	if found && cached != nil && cached.UID == userID && cached.IsAdmin {
		return true
	}

	if !s.IsOnline(ctx) {
		return false
	}

	doc, err := s.remoteRead(ctx, adminPath(userID))
	if err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			s.logger.Err(err).Str("func", "*dataService.VerifyAdmin").Str("user_id", userID).
				Msg("admin lookup failed, denying")
		}
		return false
	}

	return doc.Bool(models.FieldIsAdmin)
}

func (s *dataService) SaveAdminAuth(ctx context.Context, auth models.AdminAuth) {
	s.setJSON(ctx, keyAdminAuth, auth)
}

func (s *dataService) ClearAdminAuth(ctx context.Context) {
	s.setJSON(ctx, keyAdminAuth, nil)
}

func (s *dataService) remoteRead(ctx context.Context, path string) (doc models.Document, err error) {
	err = safely(func() error {
		doc, err = s.remote.Read(ctx, path)
		return err
	})
	return doc, err
}

func (s *dataService) cachedDocument(ctx context.Context, path string, recovered error) models.Result[models.Document] {
	var cached models.Document
	found, err := s.getJSON(ctx, path, &cached)
	if err != nil {
		recovered = errors.Join(recovered, err)
	}
	if !found || cached == nil {
		return models.Result[models.Document]{Source: models.SourceNone, Recovered: recovered}
	}
	return models.Result[models.Document]{Value: cached, Source: models.SourceCache, Recovered: recovered}
}

// getJSON decodes the cache entry at key into v. A missing key is not an
// error. Failures are logged and returned for the caller's Result.
func (s *dataService) getJSON(ctx context.Context, key string, v any) (bool, error) {
	var raw []byte
	err := safely(func() (err error) {
		raw, err = s.cache.Get(ctx, key)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrCacheMiss) {
			return false, nil
		}
		s.logger.Err(err).Str("func", "*dataService.getJSON").Str("key", key).Msg("cache read failed")
		return false, err
	}

	if err = json.Unmarshal(raw, v); err != nil {
		s.logger.Err(err).Str("func", "*dataService.getJSON").Str("key", key).Msg("cache entry is not valid JSON")
		return false, fmt.Errorf("decode cache entry %q: %w", key, err)
	}

	return true, nil
}

// setJSON stores v at key. Failures are logged and swallowed.
func (s *dataService) setJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Err(err).Str("func", "*dataService.setJSON").Str("key", key).Msg("cannot encode cache entry")
		return
	}

	err = safely(func() error {
		return s.cache.Set(ctx, key, raw)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*dataService.setJSON").Str("key", key).Msg("cache write failed")
	}
}

// mirrorJSON caches remote data at key. Keys shaped like a staged write are
// left uncached so the sync pass never picks them up.
func (s *dataService) mirrorJSON(ctx context.Context, key string, v any) {
	if _, _, ok := parsePendingKey(key); ok {
		s.logger.Warn().Str("func", "*dataService.mirrorJSON").Str("key", key).
			Msg("key has the pending-write shape, not cached")
		return
	}
	s.setJSON(ctx, key, v)
}

// safely runs fn, converting a panic into an error.
func safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errPanicked, r)
		}
	}()
	return fn()
}
