// Package store owns the authoritative collection of user records and
// serializes all mutating access to it.
//
// The package exposes only the [UserRepository] contract; the backing
// collection is never handed out directly. The current implementation keeps
// everything in process memory, which is sufficient because the service has
// no persistence requirement.
package store

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// UserRepository is the storage contract for user records.
//
// Implementations must be safe for concurrent use: Create, Update, and
// Delete perform read-modify-write sequences (id computation, in-place field
// overwrite, removal) that have to run under one exclusive lock to prevent
// lost updates and duplicate ids.
type UserRepository interface {
	// List returns a snapshot of all records in insertion order.
	List(ctx context.Context) ([]models.User, error)

	// GetByID returns the record with the given id or [ErrUserNotFound].
	GetByID(ctx context.Context, id int64) (models.User, error)

	// Create assigns the next free id to user (any client-supplied id is
	// ignored), appends it, and returns the stored record.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update overwrites the mutable fields (name, email) of the record
	// with the given id and returns the updated record. The id itself is
	// never changed. Returns [ErrUserNotFound] for unknown ids.
	Update(ctx context.Context, id int64, user models.User) (models.User, error)

	// Delete removes the record with the given id.
	// Returns [ErrUserNotFound] for unknown ids.
	Delete(ctx context.Context, id int64) error
}
