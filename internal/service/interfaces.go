// Package service implements the business logic layer between the HTTP
// transport and the store. Services depend on repository interfaces and are
// themselves consumed through the interfaces below, so each layer can be
// tested with lightweight fakes.
package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// UserService exposes the user directory operations consumed by the HTTP
// handlers. Create and Update validate their input before touching the
// store; lookups return [store.ErrUserNotFound] for unknown ids.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, id int64, user models.User) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserServiceWrapper is a UserService decorator that adds behaviour around
// an inner service (e.g. validation before mutation).
type UserServiceWrapper interface {
	UserService

	// Wrap sets the inner service the wrapper delegates to and returns the
	// wrapper as a plain UserService.
	Wrap(inner UserService) UserService
}

// AppInfoService exposes application metadata such as the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
