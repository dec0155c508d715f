package client

import "errors"

var (
	errNoAdapterProvided = errors.New("no server adapter provided")
	errUnknownCommand    = errors.New("unknown command")
	errInvalidArguments  = errors.New("invalid arguments")
)
