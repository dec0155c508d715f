package http

import (
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/service"
)

type Handler struct {
	services *service.Services

	apiKey      string
	development bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		apiKey:      cfg.Auth.APIKey,
		development: cfg.App.IsDevelopment(),
		logger:      logger,
	}
}
