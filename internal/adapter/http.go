package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/calm-journal/internal/config"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/internal/utils"
	"github.com/MKhiriev/calm-journal/models"
	"github.com/go-resty/resty/v2"
)

const (
	documentsRoute   = "/api/v1/documents/"
	collectionsRoute = "/api/v1/collections/"
)

// HTTPRemoteStore is a [RemoteStore] backed by the REST document API.
type HTTPRemoteStore struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs an HTTP/REST implementation of [RemoteStore].
// It normalises and validates the base URL from cfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. cfg.Token, when set, is sent as a bearer token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPRemoteStore(cfg config.ClientAdapter, logger *logger.Logger) (*HTTPRemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	s := &HTTPRemoteStore{client: client, logger: logger}
	s.SetToken(cfg.Token)
	return s, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken replaces the bearer token attached to subsequent requests. An
// empty token disables the Authorization header.
func (h *HTTPRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token returns the bearer token currently in use.
func (h *HTTPRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Create implements [RemoteStore] via POST /api/v1/documents/{collectionPath}.
func (h *HTTPRemoteStore) Create(ctx context.Context, collectionPath string, doc models.Document) (string, error) {
	p, err := cleanPath(collectionPath)
	if err != nil {
		return "", err
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Post(documentsRoute + escapePath(p))
	if err != nil {
		h.logFailure("*HTTPRemoteStore.Create", p, nil, err)
		return "", fmt.Errorf("create document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure("*HTTPRemoteStore.Create", p, resp, err)
		return "", err
	}

	var created models.CreateResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("decode create response: empty document id")
	}

	return created.ID, nil
}

// Read implements [RemoteStore] via GET /api/v1/documents/{path}.
func (h *HTTPRemoteStore) Read(ctx context.Context, path string) (models.Document, error) {
	p, err := cleanPath(path)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).Get(documentsRoute + escapePath(p))
	if err != nil {
		h.logFailure("*HTTPRemoteStore.Read", p, nil, err)
		return nil, fmt.Errorf("read document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure("*HTTPRemoteStore.Read", p, resp, err)
		return nil, err
	}

	var dr models.DocumentResponse
	if err = json.Unmarshal(resp.Body(), &dr); err != nil {
		return nil, fmt.Errorf("decode document response: %w", err)
	}
	if dr.Data == nil {
		dr.Data = models.Document{}
	}

	return dr.Data, nil
}

// ListCollection implements [RemoteStore] via
// GET /api/v1/collections/{collectionPath}.
func (h *HTTPRemoteStore) ListCollection(ctx context.Context, collectionPath string) ([]models.IdentifiedDocument, error) {
	p, err := cleanPath(collectionPath)
	if err != nil {
		return nil, err
	}

	resp, err := h.authedRequest(ctx).Get(collectionsRoute + escapePath(p))
	if err != nil {
		h.logFailure("*HTTPRemoteStore.ListCollection", p, nil, err)
		return nil, fmt.Errorf("list collection request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logFailure("*HTTPRemoteStore.ListCollection", p, resp, err)
		return nil, err
	}

	var cr models.CollectionResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return nil, fmt.Errorf("decode collection response: %w", err)
	}
	if cr.Documents == nil {
		cr.Documents = []models.IdentifiedDocument{}
	}

	return cr.Documents, nil
}

func (h *HTTPRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// logFailure records the request path and HTTP status, which callers only
// see as a mapped sentinel. Callers log the failure itself.
func (h *HTTPRemoteStore) logFailure(fn, path string, resp *resty.Response, err error) {
	ev := h.logger.Debug().Err(err).Str("func", fn).Str("path", path)
	if resp != nil {
		ev = ev.Int("status", resp.StatusCode())
	}
	ev.Msg("remote request failed")
}
