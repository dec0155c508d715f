package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

// UserValidationService is a UserService decorator that validates incoming
// records before they reach the inner service. Read and delete operations
// pass through untouched.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

// NewUserValidationService returns a validation wrapper around a UserService.
// Callers must attach the inner service via [UserValidationService.Wrap].
func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) List(ctx context.Context) ([]models.User, error) {
	return v.inner.List(ctx)
}

func (v *UserValidationService) GetByID(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetByID(ctx, id)
}

func (v *UserValidationService) Create(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	return v.inner.Create(ctx, user)
}

func (v *UserValidationService) Update(ctx context.Context, id int64, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	return v.inner.Update(ctx, id, user)
}

func (v *UserValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
