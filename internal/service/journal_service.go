package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/models"
)

type journalService struct {
	data     DataService
	identity IdentityProvider
	logger   *logger.Logger
}

// NewJournalService builds the journal layer on top of data.
func NewJournalService(data DataService, identity IdentityProvider, logger *logger.Logger) JournalService {
	return &journalService{data: data, identity: identity, logger: logger}
}

func (j *journalService) AddEntry(ctx context.Context, kind models.EntryKind, entry models.Document) (string, error) {
	collectionPath, err := j.collectionPath(ctx, kind)
	if err != nil {
		return "", err
	}

	id, err := j.data.AddDocument(ctx, collectionPath, entry)
	if err != nil {
		return "", err
	}

	j.logger.Debug().Str("kind", string(kind)).Str("id", id).Msg("journal entry added")
	return id, nil
}

// ListEntries appends staged entries, annotated with their temporary ID, to
// the collection so writes made offline show up immediately.
func (j *journalService) ListEntries(ctx context.Context, kind models.EntryKind) (models.Result[[]models.Document], error) {
	collectionPath, err := j.collectionPath(ctx, kind)
	if err != nil {
		return models.Result[[]models.Document]{Value: []models.Document{}}, err
	}

	res := j.data.GetCollection(ctx, collectionPath)
	for _, pw := range j.data.PendingWrites(ctx) {
		if pw.CollectionPath != collectionPath {
			continue
		}
		res.Value = append(res.Value, models.IdentifiedDocument{ID: pw.TempID, Data: pw.Document}.Annotated())
	}

	return res, nil
}

func (j *journalService) collectionPath(ctx context.Context, kind models.EntryKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEntryKind, kind)
	}
	identity, ok := j.identity.Current(ctx)
	if !ok || identity.UID == "" {
		return "", ErrUnauthenticated
	}
	return userPath(identity.UID) + "/" + string(kind), nil
}
