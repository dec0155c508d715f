// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatedService() UserService {
	storages := store.NewStorages(logger.Nop())
	return NewUserValidationService().
		Wrap(NewUserService(storages.UserRepository, logger.Nop()))
}

func TestCreate_ValidUserPassesThrough(t *testing.T) {
	svc := newValidatedService()

	created, err := svc.Create(context.Background(), models.User{Name: "Carl", Email: "carl@x.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestCreate_InvalidUserNeverReachesStore(t *testing.T) {
	svc := newValidatedService()
	ctx := context.Background()

	_, err := svc.Create(ctx, models.User{Name: "", Email: "not-an-email"})

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 2)

	// the store must be unchanged: only the two seed records
	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestCreate_ClientSuppliedIDIsDiscarded(t *testing.T) {
	svc := newValidatedService()

	created, err := svc.Create(context.Background(), models.User{
		ID:    500,
		Name:  "Carl",
		Email: "carl@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestUpdate_InvalidBodyLeavesRecordUnmodified(t *testing.T) {
	svc := newValidatedService()
	ctx := context.Background()

	before, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, models.User{Name: "", Email: "a@b.com"})

	var validationErr *validators.ValidationError
	require.ErrorAs(t, err, &validationErr)

	after, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdate_UnknownIDAfterValidation(t *testing.T) {
	svc := newValidatedService()

	_, err := svc.Update(context.Background(), 42, models.User{Name: "X", Email: "x@x.com"})

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestDelete_PassesThroughWithoutValidation(t *testing.T) {
	svc := newValidatedService()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 2))
	assert.ErrorIs(t, svc.Delete(ctx, 2), store.ErrUserNotFound)
}
