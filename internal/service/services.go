package service

import (
	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
)

// Services aggregates every service the transport layer depends on.
type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices wires the service layer: the core user service is wrapped in
// the validation decorator so every mutation is validated exactly once.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService().
		Wrap(NewUserService(storages.UserRepository, logger))

	return &Services{
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
