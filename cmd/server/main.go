package main

import (
	"context"
	"os"

	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/handler"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/server"
	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	info.Print(os.Stdout)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("vedicas-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("vedicas-server", cfg.Log.Level)
	if cfg.App.Version == "" {
		cfg.App.Version = info.String()
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server exited")
	}
}
