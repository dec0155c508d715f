package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type httpServer struct {
	server *http.Server

	certFile string
	keyFile  string

	logger *logger.Logger
}

func newHTTPServer(router http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	address := cfg.HTTPAddress
	if cfg.TLSEnabled() {
		address = cfg.TLSAddress
	}

	return &httpServer{
		server: &http.Server{
			Addr:         address,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		certFile: cfg.TLSCertFile,
		keyFile:  cfg.TLSKeyFile,
		logger:   logger,
	}
}

func (h *httpServer) tlsEnabled() bool {
	return h.certFile != "" && h.keyFile != ""
}

func (h *httpServer) RunServer() {
	var err error
	if h.tlsEnabled() {
		err = h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	} else {
		err = h.server.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	h.logger.Info().Msg("HTTP server Shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
