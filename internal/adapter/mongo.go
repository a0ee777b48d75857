package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/calm-journal/internal/config"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDocumentsCollection = "documents"

// mongoDocument is the stored shape of every journal document. The whole
// hierarchy lives in one collection keyed by (collection_path, doc_id).
type mongoDocument struct {
	ID             primitive.ObjectID `bson:"_id"`
	CollectionPath string             `bson:"collection_path"`
	DocID          string             `bson:"doc_id"`
	Data           bson.Raw           `bson:"data"`
}

// MongoRemoteStore is a [RemoteStore] talking to MongoDB directly.
type MongoRemoteStore struct {
	client *mongo.Client
	docs   *mongo.Collection

	indexMu    sync.Mutex
	needsIndex bool

	logger *logger.Logger
}

// NewMongoRemoteStore prepares a client for cfg.MongoURI without dialing the
// deployment, so an offline device can still start. Connection errors surface
// from the individual calls. The (collection_path, doc_id) unique index is
// created after the first successful insert.
func NewMongoRemoteStore(ctx context.Context, cfg config.ClientAdapter, logger *logger.Logger) (*MongoRemoteStore, error) {
	opts := options.Client().ApplyURI(cfg.MongoURI)
	if cfg.RequestTimeout > 0 {
		opts.SetTimeout(cfg.RequestTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	s := newMongoRemoteStore(client.Database(cfg.MongoDatabase).Collection(mongoDocumentsCollection), logger)
	s.client = client
	s.needsIndex = true

	return s, nil
}

func newMongoRemoteStore(docs *mongo.Collection, logger *logger.Logger) *MongoRemoteStore {
	return &MongoRemoteStore{docs: docs, logger: logger}
}

// Create implements [RemoteStore]. The document ID is the hex form of a new
// ObjectID.
func (s *MongoRemoteStore) Create(ctx context.Context, collectionPath string, doc models.Document) (string, error) {
	p, err := cleanPath(collectionPath)
	if err != nil {
		return "", err
	}
	if doc == nil {
		doc = models.Document{}
	}

	oid := primitive.NewObjectID()
	record := bson.M{
		"_id":             oid,
		"collection_path": p,
		"doc_id":          oid.Hex(),
		"data":            bson.M(doc),
	}

	if _, err = s.docs.InsertOne(ctx, record); err != nil {
		return "", fmt.Errorf("mongo insert document: %w", err)
	}
	s.ensureIndex(ctx)

	return oid.Hex(), nil
}

// ensureIndex creates the path index once the deployment is known to be
// reachable. A failure is retried after the next insert.
func (s *MongoRemoteStore) ensureIndex(ctx context.Context) {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	if !s.needsIndex {
		return
	}

	pathIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "collection_path", Value: 1}, {Key: "doc_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.docs.Indexes().CreateOne(ctx, pathIndex); err != nil {
		s.logger.Warn().Err(err).Str("func", "*MongoRemoteStore.ensureIndex").Msg("path index not created, will retry")
		return
	}
	s.needsIndex = false
}

// Read implements [RemoteStore].
func (s *MongoRemoteStore) Read(ctx context.Context, path string) (models.Document, error) {
	collectionPath, docID, err := splitDocumentPath(path)
	if err != nil {
		return nil, err
	}

	var found mongoDocument
	err = s.docs.FindOne(ctx, bson.M{"collection_path": collectionPath, "doc_id": docID}).Decode(&found)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("mongo find document: %w", err)
	}

	return rawToDocument(found.Data)
}

// ListCollection implements [RemoteStore]. Documents come back in insertion
// order.
func (s *MongoRemoteStore) ListCollection(ctx context.Context, collectionPath string) ([]models.IdentifiedDocument, error) {
	p, err := cleanPath(collectionPath)
	if err != nil {
		return nil, err
	}

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.docs.Find(ctx, bson.M{"collection_path": p}, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo find collection: %w", err)
	}
	defer cursor.Close(ctx)

	out := []models.IdentifiedDocument{}
	for cursor.Next(ctx) {
		var md mongoDocument
		if err = cursor.Decode(&md); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		data, err := rawToDocument(md.Data)
		if err != nil {
			return nil, err
		}
		out = append(out, models.IdentifiedDocument{ID: md.DocID, Data: data})
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return out, nil
}

// Close disconnects the underlying client.
func (s *MongoRemoteStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// rawToDocument converts stored BSON into JSON-compatible values via relaxed
// extended JSON.
func rawToDocument(raw bson.Raw) (models.Document, error) {
	if len(raw) == 0 {
		return models.Document{}, nil
	}
	ext, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, fmt.Errorf("convert document: %w", err)
	}
	var doc models.Document
	if err = json.Unmarshal(ext, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}
