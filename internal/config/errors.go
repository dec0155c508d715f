package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are incomplete or invalid.
var (
	// ErrAPIKeyIsNotSpecified indicates that no API key was provided by
	// any configuration source. The service refuses to start without one.
	ErrAPIKeyIsNotSpecified = errors.New("API key is not specified")
	// ErrIncompleteTLSConfigs indicates that only one of the TLS
	// certificate / key pair was provided.
	ErrIncompleteTLSConfigs = errors.New("incomplete TLS configuration: both certificate and key are required")
)
