package http

import (
	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/service"
	"github.com/MKhiriev/go-2048-server/internal/store"
)

type Handler struct {
	services *service.Services

	// crashReporter receives panic records from the recovery middleware.
	crashReporter store.CrashReporter

	// staticDir is the root of the browser game assets served at "/".
	staticDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, crashReporter store.CrashReporter, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		crashReporter: crashReporter,
		staticDir:     cfg.StaticDir,
		logger:        logger,
	}
}
