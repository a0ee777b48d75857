package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/calm-journal/internal/adapter"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/internal/service"
	"github.com/MKhiriev/calm-journal/internal/store"
	"github.com/MKhiriev/calm-journal/internal/workers"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	storages *store.ClientStorages
	remotes  *adapter.ClientRemotes
	token    string

	logger *logger.Logger
}

// NewApp assembles the client around already built services. token is an
// optional ID token; when set it takes precedence over the persisted session.
// The app owns storages and remotes and closes them when Run returns.
func NewApp(services *service.ClientServices, storages *store.ClientStorages, remotes *adapter.ClientRemotes, token string, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}

	return &App{
		services: services,
		workers:  workers.NewWorkers(logger, services.SyncJob),
		storages: storages,
		remotes:  remotes,
		token:    token,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.restoreSession(ctx); err != nil {
		return errors.Join(err, a.close())
	}

	report := a.services.Data.SyncPendingChanges(ctx)
	a.logger.Info().
		Bool("skipped", report.Skipped).
		Int("synced", len(report.Synced)).
		Int("failed", len(report.Failed)).
		Msg("startup sync finished")

	a.workers.Start(ctx)
	<-ctx.Done()
	a.logger.Info().Msg("shutting down client")
	a.workers.Stop()

	return a.close()
}

func (a *App) restoreSession(ctx context.Context) error {
	if a.token != "" {
		identity, err := a.services.Identity.SignInWithToken(a.token)
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}
		a.services.Data.SaveAuthState(ctx, identity)
		a.logger.Info().Str("uid", identity.UID).Msg("signed in with token")
		return nil
	}

	state, ok := a.services.Data.GetAuthState(ctx)
	if !ok || state.UID == "" {
		a.logger.Warn().Msg("no persisted session, journal writes will be rejected")
		return nil
	}

	a.services.Identity.SignIn(state.Identity())
	a.logger.Info().Str("uid", state.UID).Str("last_login", state.LastLogin).Msg("session restored")
	return nil
}

func (a *App) close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(a.storages.Close(), a.remotes.Close(ctx))
}
