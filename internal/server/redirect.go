package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
)

// redirectServer listens on the plain-HTTP address and permanently redirects
// every request to the TLS address, preserving path and query string.
type redirectServer struct {
	server *http.Server
	logger *logger.Logger
}

func newRedirectServer(cfg config.Server, logger *logger.Logger) *redirectServer {
	_, tlsPort, err := net.SplitHostPort(cfg.TLSAddress)
	if err != nil {
		tlsPort = "443"
	}

	redirect := func(w http.ResponseWriter, r *http.Request) {
		host := r.Host
		if h, _, splitErr := net.SplitHostPort(r.Host); splitErr == nil {
			host = h
		}

		target := "https://" + net.JoinHostPort(host, tlsPort) + r.RequestURI
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	}

	return &redirectServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      http.HandlerFunc(redirect),
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (r *redirectServer) RunServer() {
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.logger.Error().Msgf("redirect server ListenAndServe: %v", err)
	}
}

func (r *redirectServer) Shutdown() {
	r.logger.Info().Msg("redirect server Shutdown")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := r.server.Shutdown(ctx); err != nil {
		r.logger.Error().Msgf("redirect server Shutdown: %v", err)
	}
}
