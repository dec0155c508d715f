package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdapter struct {
	adapter.ServerAdapter

	listUsersFunc  func(ctx context.Context) ([]models.User, error)
	createUserFunc func(ctx context.Context, user models.User) (models.User, error)
	deleteUserFunc func(ctx context.Context, id int64) error
}

func (s *stubAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.listUsersFunc(ctx)
}

func (s *stubAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return s.createUserFunc(ctx, user)
}

func (s *stubAdapter) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteUserFunc(ctx, id)
}

func newTestApp(t *testing.T, stub *stubAdapter) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	app, err := NewApp(stub, out, logger.Nop())
	require.NoError(t, err)
	return app, out
}

func TestNewApp_RequiresAdapter(t *testing.T) {
	_, err := NewApp(nil, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAdapterProvided)
}

func TestRun_List(t *testing.T) {
	stub := &stubAdapter{
		listUsersFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: 1, Name: "John Doe", Email: "john.doe@example.com"}}, nil
		},
	}
	app, out := newTestApp(t, stub)

	require.NoError(t, app.Run(context.Background(), "list", nil))
	assert.Contains(t, out.String(), `"John Doe"`)
}

func TestRun_CreatePassesArguments(t *testing.T) {
	var received models.User
	stub := &stubAdapter{
		createUserFunc: func(ctx context.Context, user models.User) (models.User, error) {
			received = user
			user.ID = 3
			return user, nil
		},
	}
	app, out := newTestApp(t, stub)

	require.NoError(t, app.Run(context.Background(), "create", []string{"Carl", "carl@x.com"}))
	assert.Equal(t, models.User{Name: "Carl", Email: "carl@x.com"}, received)
	assert.Contains(t, out.String(), `"id": 3`)
}

func TestRun_CreateRejectsWrongArity(t *testing.T) {
	app, _ := newTestApp(t, &stubAdapter{})

	err := app.Run(context.Background(), "create", []string{"Carl"})
	assert.ErrorIs(t, err, errInvalidArguments)
}

func TestRun_DeleteParsesID(t *testing.T) {
	var deletedID int64
	stub := &stubAdapter{
		deleteUserFunc: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	app, out := newTestApp(t, stub)

	require.NoError(t, app.Run(context.Background(), "delete", []string{"2"}))
	assert.Equal(t, int64(2), deletedID)
	assert.Contains(t, out.String(), "user 2 deleted")
}

func TestRun_DeleteRejectsNonIntegerID(t *testing.T) {
	app, _ := newTestApp(t, &stubAdapter{})

	err := app.Run(context.Background(), "delete", []string{"two"})
	assert.ErrorIs(t, err, errInvalidArguments)
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(t, &stubAdapter{})

	err := app.Run(context.Background(), "frobnicate", nil)
	assert.ErrorIs(t, err, errUnknownCommand)
}

func TestRun_HelpPrintsUsage(t *testing.T) {
	app, out := newTestApp(t, &stubAdapter{})

	require.NoError(t, app.Run(context.Background(), "help", nil))
	assert.Contains(t, out.String(), "usage:")
}
