package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-calendar/internal/config"
	"github.com/MKhiriev/go-calendar/internal/handler"
	"github.com/MKhiriev/go-calendar/internal/logger"
	"github.com/MKhiriev/go-calendar/internal/metrics"
	"github.com/MKhiriev/go-calendar/internal/server"
	"github.com/MKhiriev/go-calendar/internal/service"
	"github.com/MKhiriev/go-calendar/internal/store"
	"github.com/MKhiriev/go-calendar/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("calendar-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	appMetrics := metrics.New()
	appMetrics.SetBuildInfo(buildInfo)

	handlers, err := handler.NewHandlers(services, cfg.Server, appMetrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
