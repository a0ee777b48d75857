package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/calm-journal/internal/config"
	"github.com/MKhiriev/calm-journal/internal/logger"
)

// ClientRemotes groups the remote store and the connectivity probe selected
// by configuration.
type ClientRemotes struct {
	Store RemoteStore
	Probe ConnectivityProbe

	closeFn func(context.Context) error
}

// NewClientRemotes builds the remote side for cfg.Kind:
//   - "http": REST document API at cfg.HTTPAddress, probed over the network;
//   - "mongo": MongoDB at cfg.MongoURI, probed over the network;
//   - "memory": in-process store that is always online.
//
// Returns [ErrUnknownAdapterKind] for any other kind.
func NewClientRemotes(ctx context.Context, cfg config.ClientAdapter, logger *logger.Logger) (*ClientRemotes, error) {
	logger.Info().Str("kind", cfg.Kind).Msg("creating remote store...")

	switch cfg.Kind {
	case config.AdapterKindHTTP:
		store, err := NewHTTPRemoteStore(cfg, logger)
		if err != nil {
			return nil, err
		}
		return &ClientRemotes{
			Store: store,
			Probe: NewNetProbe(cfg.ProbeURL, cfg.RequestTimeout, logger),
		}, nil
	case config.AdapterKindMongo:
		store, err := NewMongoRemoteStore(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return &ClientRemotes{
			Store:   store,
			Probe:   NewNetProbe(cfg.ProbeURL, cfg.RequestTimeout, logger),
			closeFn: store.Close,
		}, nil
	case config.AdapterKindMemory:
		return &ClientRemotes{
			Store: NewMemoryRemoteStore(),
			Probe: NewStaticProbe(true),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdapterKind, cfg.Kind)
	}
}

// Close releases backend connections, if any.
func (r *ClientRemotes) Close(ctx context.Context) error {
	if r == nil || r.closeFn == nil {
		return nil
	}
	return r.closeFn(ctx)
}
