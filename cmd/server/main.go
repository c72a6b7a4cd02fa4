package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/handler/http"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/server"
	"github.com/MKhiriev/go-2048-server/internal/service"
	"github.com/MKhiriev/go-2048-server/internal/store"
	"github.com/MKhiriev/go-2048-server/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-2048-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	repositories := store.NewRepositories(cfg.Storage, cfg.App, log)

	// blocking initialization passes before the listener starts: seed the
	// default accounts, then sweep an oversized access log left behind by a
	// previous run
	ctx := context.Background()
	repositories.UserRepository.EnsureDefaults(ctx)
	repositories.AccessLogRepository.EnforceRetention(ctx)

	services := service.NewServices(repositories, *cfg, log)
	handler := http.NewHandler(services, repositories.CrashReporter, cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(repositories, cfg.Workers, log).Run()

	srv.RunServer()
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
