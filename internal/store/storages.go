package store

import "github.com/MKhiriev/go-user-directory/internal/logger"

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds all repositories used by the application.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewMemoryUserRepository(logger),
	}
}
