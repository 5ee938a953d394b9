package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/travel-journal-api/internal/config"
	"github.com/MKhiriev/travel-journal-api/internal/handler"
	"github.com/MKhiriev/travel-journal-api/internal/logger"
	"github.com/MKhiriev/travel-journal-api/internal/server"
	"github.com/MKhiriev/travel-journal-api/internal/service"
	"github.com/MKhiriev/travel-journal-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	log := logger.NewLogger("travel-journal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		return err
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
