// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// user directory service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the execution
	// environment and the application version.
	App App `envPrefix:"APP_"`

	// Auth holds the API-key settings enforced by the authentication
	// middleware.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds network address, TLS, and timeout settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the execution mode of the process. The value
	// "development" enables verbose logging and exposes fault details in
	// 500 responses; any other value is treated as production.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds the shared-secret settings checked on every request.
type Auth struct {
	// APIKey is the secret value that every request must present in the
	// X-API-KEY header. Must be kept confidential. Startup fails when it
	// is not configured.
	// Env: AUTH_API_KEY
	APIKey string `env:"API_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the plain HTTP listener
	// runs, in "host:port" format (e.g. "localhost:8080"). When TLS is
	// configured this listener only issues redirects to the TLS address.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TLSAddress is the TCP address of the HTTPS listener. Used only when
	// both TLSCertFile and TLSKeyFile are set.
	// Env: SERVER_TLS_ADDRESS
	TLSAddress string `env:"TLS_ADDRESS"`

	// TLSCertFile is the path to the PEM-encoded server certificate.
	// Env: SERVER_TLS_CERT_FILE
	TLSCertFile string `env:"TLS_CERT_FILE"`

	// TLSKeyFile is the path to the PEM-encoded private key matching
	// TLSCertFile.
	// Env: SERVER_TLS_KEY_FILE
	TLSKeyFile string `env:"TLS_KEY_FILE"`

	// RequestTimeout is the maximum duration allowed for reading and
	// writing a single inbound request (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// EnvDevelopment is the App.Environment value that marks a process as
// running in development mode.
const EnvDevelopment = "development"

// IsDevelopment reports whether the application runs in development mode.
// The comparison is case-insensitive so "Development" (as set by common
// deployment tooling) is accepted as well.
func (a App) IsDevelopment() bool {
	return strings.EqualFold(a.Environment, EnvDevelopment)
}

// TLSEnabled reports whether the server is configured to terminate TLS
// itself. Both the certificate and the key must be present.
func (s Server) TLSEnabled() bool {
	return s.TLSCertFile != "" && s.TLSKeyFile != ""
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
