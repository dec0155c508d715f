// Package adapter provides a typed HTTP client for the user directory API.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// ServerAdapter is the client-side contract for talking to a running user
// directory server. All methods translate non-2xx responses into the
// package's sentinel errors.
type ServerAdapter interface {
	// Greeting fetches the root greeting message.
	Greeting(ctx context.Context) (string, error)

	// Version fetches the server's application version.
	Version(ctx context.Context) (string, error)

	// ListUsers returns all users currently stored on the server.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns the user with the given id or ErrNotFound.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser stores a new user and returns it with the server-assigned id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces the mutable fields of the user with the given id.
	UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error)

	// DeleteUser removes the user with the given id or returns ErrNotFound.
	DeleteUser(ctx context.Context, id int64) error
}
