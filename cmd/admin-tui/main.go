package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-2048-server/internal/adapter"
	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetAdminClientConfig()
	if err != nil {
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	log := logger.NewFileLogger("go-2048-admin", cfg.LogPath)

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.ServerAddress,
		Timeout: cfg.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ui, err := tui.New(serverAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(context.Background()); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("admin tui run error")
	}
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
