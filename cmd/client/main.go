package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/calm-journal/internal/adapter"
	"github.com/MKhiriev/calm-journal/internal/client"
	"github.com/MKhiriev/calm-journal/internal/config"
	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/internal/service"
	"github.com/MKhiriev/calm-journal/internal/store"
	"github.com/MKhiriev/calm-journal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("calm-journal-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("calm-journal-client", cfg.App.LogFile, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	remotes, err := adapter.NewClientRemotes(ctx, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	services := service.NewClientServices(storages, remotes, cfg.Workers, log)

	app, err := client.NewApp(services, storages, remotes, cfg.Adapter.Token, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
