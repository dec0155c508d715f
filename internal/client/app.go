package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/models"
)

// App is a one-shot command dispatcher over the user directory API.
type App struct {
	adapter adapter.ServerAdapter
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errNoAdapterProvided
	}

	return &App{adapter: serverAdapter, out: out, logger: logger}, nil
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "greeting":
		return a.greeting(ctx)
	case "version":
		return a.version(ctx)
	case "list":
		return a.list(ctx)
	case "get":
		return a.get(ctx, args)
	case "create":
		return a.create(ctx, args)
	case "update":
		return a.update(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "", "help":
		return a.usage()
	default:
		_ = a.usage()
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}
}

func (a *App) greeting(ctx context.Context) error {
	message, err := a.adapter.Greeting(ctx)
	if err != nil {
		return fmt.Errorf("greeting: %w", err)
	}

	fmt.Fprintln(a.out, message)
	return nil
}

func (a *App) version(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return fmt.Errorf("version: %w", err)
	}

	fmt.Fprintln(a.out, version)
	return nil
}

func (a *App) list(ctx context.Context) error {
	users, err := a.adapter.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	return a.printJSON(users)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := parseIDArg(args)
	if err != nil {
		return err
	}

	user, err := a.adapter.GetUser(ctx, id)
	if err != nil {
		return fmt.Errorf("get user %d: %w", id, err)
	}

	return a.printJSON(user)
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: create <name> <email>", errInvalidArguments)
	}

	created, err := a.adapter.CreateUser(ctx, models.User{Name: args[0], Email: args[1]})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return a.printJSON(created)
}

func (a *App) update(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: update <id> <name> <email>", errInvalidArguments)
	}

	id, err := parseIDArg(args)
	if err != nil {
		return err
	}

	updated, err := a.adapter.UpdateUser(ctx, id, models.User{Name: args[1], Email: args[2]})
	if err != nil {
		return fmt.Errorf("update user %d: %w", id, err)
	}

	return a.printJSON(updated)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := parseIDArg(args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	fmt.Fprintf(a.out, "user %d deleted\n", id)
	return nil
}

func (a *App) usage() error {
	fmt.Fprintln(a.out, "usage: user-directory-cli <command> [arguments]")
	fmt.Fprintln(a.out, "commands:")
	fmt.Fprintln(a.out, "  greeting")
	fmt.Fprintln(a.out, "  version")
	fmt.Fprintln(a.out, "  list")
	fmt.Fprintln(a.out, "  get <id>")
	fmt.Fprintln(a.out, "  create <name> <email>")
	fmt.Fprintln(a.out, "  update <id> <name> <email>")
	fmt.Fprintln(a.out, "  delete <id>")
	return nil
}

func (a *App) printJSON(data any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func parseIDArg(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("%w: an id is required", errInvalidArguments)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid id", errInvalidArguments, args[0])
	}

	return id, nil
}
