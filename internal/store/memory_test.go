// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository() UserRepository {
	return NewMemoryUserRepository(logger.Nop())
}

func TestList_ReturnsSeedRecords(t *testing.T) {
	repo := newTestRepository()

	users, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ID)
	assert.Equal(t, int64(2), users[1].ID)
}

func TestList_SnapshotIsIsolated(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)

	// mutating the snapshot must not leak into the store
	users[0].Name = "mutated"

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", stored.Name)
}

func TestGetByID_TableTest(t *testing.T) {
	repo := newTestRepository()

	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{name: "existing first record", id: 1},
		{name: "existing second record", id: 2},
		{name: "never created", id: 42, wantErr: ErrUserNotFound},
		{name: "zero id", id: 0, wantErr: ErrUserNotFound},
		{name: "negative id", id: -1, wantErr: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := repo.GetByID(context.Background(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, user.ID)
		})
	}
}

func TestCreate_AssignsNextID(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, models.User{Name: "Carl", Email: "carl@x.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestCreate_IgnoresClientSuppliedID(t *testing.T) {
	repo := newTestRepository()

	created, err := repo.Create(context.Background(), models.User{
		ID:    999,
		Name:  "Carl",
		Email: "carl@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestCreate_IDsAreStrictlyIncreasing(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	var prev int64 = 2 // seed max
	for i := 0; i < 10; i++ {
		created, err := repo.Create(ctx, models.User{Name: "N", Email: "n@x.com"})
		require.NoError(t, err)
		assert.Greater(t, created.ID, prev)
		prev = created.ID
	}
}

func TestCreate_ConcurrentIDsAreUnique(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	const workers = 100

	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := repo.Create(ctx, models.User{Name: "W", Email: "w@x.com"})
			assert.NoError(t, err)
			ids <- created.ID
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestUpdate_OverwritesOnlyMutableFields(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	updated, err := repo.Update(ctx, 1, models.User{
		ID:    777, // must be ignored
		Name:  "Renamed",
		Email: "renamed@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "renamed@x.com", updated.Email)

	stored, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdate_UnknownID(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.Update(context.Background(), 42, models.User{Name: "X", Email: "x@x.com"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDelete_TwiceInARow(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 1))
	assert.ErrorIs(t, repo.Delete(ctx, 1), ErrUserNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

// Deleting the record with the highest id frees that id for the next
// create: ids are computed against the current max, as specified.
func TestDelete_ThenCreate_ReusesMaxID(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, 2))

	created, err := repo.Create(ctx, models.User{Name: "Carl", Email: "carl@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestConcurrentCreateAndDelete_NoDuplicateIDs(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, err := repo.Create(ctx, models.User{Name: "C", Email: "c@x.com"})
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := int64(1); i <= 50; i++ {
			// not-found errors are expected here, races are the point
			_ = repo.Delete(ctx, i)
		}
	}()

	wg.Wait()

	users, err := repo.List(ctx)
	require.NoError(t, err)

	seen := make(map[int64]bool, len(users))
	for _, u := range users {
		assert.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}
