package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/models"
)

type userService struct {
	repository store.UserRepository

	logger *logger.Logger
}

// NewUserService returns the core UserService backed by the given repository.
// It carries no validation; wrap it with [NewUserValidationService] before
// exposing it to transports.
func NewUserService(repository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		repository: repository,
		logger:     logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repository.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id int64) (models.User, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	// the store assigns ids; a client-supplied value must never survive
	user.ID = 0

	return s.repository.Create(ctx, user)
}

func (s *userService) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	return s.repository.Update(ctx, id, user)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
