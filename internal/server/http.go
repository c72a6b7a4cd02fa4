package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
)

type httpServer struct {
	server *http.Server

	// port is the preferred listen port. When it is already taken the
	// server falls back to port+1 once.
	port int

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Handler:           router,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		port:   cfg.Port,
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	listener, err := h.listen()
	if err != nil {
		// the process stays alive so the operator can inspect and fix the
		// port configuration without losing crash/audit state
		h.logger.Error().Err(err).Int("port", h.port).Msg("HTTP server could not start listening")
		return
	}

	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server Serve")
	}
}

// listen binds the preferred port, falling back to port+1 when the
// preferred one is already in use. A permission failure is terminal for
// the listener but not for the process.
func (h *httpServer) listen() (net.Listener, error) {
	for _, port := range []int{h.port, h.port + 1} {
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			h.logger.Info().Int("port", port).Msg("HTTP server listening")
			return listener, nil
		}

		switch {
		case errors.Is(err, syscall.EADDRINUSE):
			h.logger.Warn().Int("port", port).Msg("port already in use, trying the next one")
		case errors.Is(err, syscall.EACCES):
			h.logger.Error().Err(err).Int("port", port).Msg("no permission to bind port")
			return nil, err
		default:
			return nil, err
		}
	}

	return nil, errNoFreePort
}

func (h *httpServer) Shutdown() {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
