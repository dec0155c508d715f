package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

// memoryUserRepository keeps all user records in an ordered in-memory slice.
//
// A single sync.RWMutex guards the slice. Every mutating operation takes the
// write lock around its whole read-modify-write sequence, including Delete,
// which would otherwise race with the id computation inside Create. Plain
// reads take the read lock and return copies, never the backing slice.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User

	logger *logger.Logger
}

// NewMemoryUserRepository returns a UserRepository seeded with the two
// initial directory records.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	return &memoryUserRepository{
		users: []models.User{
			{ID: 1, Name: "John Doe", Email: "john.doe@example.com"},
			{ID: 2, Name: "Jane Doe", Email: "jane.doe@example.com"},
		},
		logger: logger,
	}
}

func (m *memoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make([]models.User, len(m.users))
	copy(snapshot, m.users)

	return snapshot, nil
}

func (m *memoryUserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (m *memoryUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextID()
	m.users = append(m.users, user)

	m.logger.Debug().Int64("user_id", user.ID).Msg("user record created")

	return user, nil
}

func (m *memoryUserRepository) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Name = user.Name
			m.users[i].Email = user.Email

			m.logger.Debug().Int64("user_id", id).Msg("user record updated")

			return m.users[i], nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (m *memoryUserRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)

			m.logger.Debug().Int64("user_id", id).Msg("user record deleted")

			return nil
		}
	}

	return ErrUserNotFound
}

// nextID computes max existing id + 1, or 1 when the store is empty.
// Must be called with the write lock held.
func (m *memoryUserRepository) nextID() int64 {
	var maxID int64
	for _, user := range m.users {
		if user.ID > maxID {
			maxID = user.ID
		}
	}

	return maxID + 1
}
