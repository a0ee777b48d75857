package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/calm-journal/internal/utils"
	"github.com/MKhiriev/calm-journal/models"
)

type memoryCollection struct {
	order []string
	docs  map[string]models.Document
}

// MemoryRemoteStore is an in-process [RemoteStore]. Documents are deep-copied
// on the way in and out so callers never share maps with the store.
type MemoryRemoteStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	ids         *utils.UUIDGenerator
}

// NewMemoryRemoteStore returns an empty store that assigns UUIDv7 document
// IDs.
func NewMemoryRemoteStore() *MemoryRemoteStore {
	return &MemoryRemoteStore{
		collections: make(map[string]*memoryCollection),
		ids:         utils.NewUUIDGenerator(),
	}
}

func (m *MemoryRemoteStore) Create(ctx context.Context, collectionPath string, doc models.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p, err := cleanPath(collectionPath)
	if err != nil {
		return "", err
	}
	stored, err := deepCopy(doc)
	if err != nil {
		return "", err
	}

	id := m.ids.Generate()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(p, id, stored)

	return id, nil
}

func (m *MemoryRemoteStore) Read(ctx context.Context, path string) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	collectionPath, id, err := splitDocumentPath(path)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.collections[collectionPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	doc, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	return deepCopy(doc)
}

func (m *MemoryRemoteStore) ListCollection(ctx context.Context, collectionPath string) ([]models.IdentifiedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := cleanPath(collectionPath)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.IdentifiedDocument{}
	c, ok := m.collections[p]
	if !ok {
		return out, nil
	}
	for _, id := range c.order {
		doc, err := deepCopy(c.docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, models.IdentifiedDocument{ID: id, Data: doc})
	}

	return out, nil
}

// Put stores doc at the explicit document path, replacing any previous
// value. Used to seed profiles and admin records.
func (m *MemoryRemoteStore) Put(path string, doc models.Document) error {
	collectionPath, id, err := splitDocumentPath(path)
	if err != nil {
		return err
	}
	stored, err := deepCopy(doc)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(collectionPath, id, stored)

	return nil
}

// Len returns the number of documents in the collection at collectionPath.
func (m *MemoryRemoteStore) Len(collectionPath string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if c, ok := m.collections[collectionPath]; ok {
		return len(c.order)
	}
	return 0
}

// put must be called with m.mu held for writing.
func (m *MemoryRemoteStore) put(collectionPath, id string, doc models.Document) {
	c, ok := m.collections[collectionPath]
	if !ok {
		c = &memoryCollection{docs: make(map[string]models.Document)}
		m.collections[collectionPath] = c
	}
	if _, exists := c.docs[id]; !exists {
		c.order = append(c.order, id)
	}
	c.docs[id] = doc
}

// deepCopy round-trips doc through JSON, which also normalises values to
// the types a real document API would return.
func deepCopy(doc models.Document) (models.Document, error) {
	if doc == nil {
		return models.Document{}, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var out models.Document
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}
