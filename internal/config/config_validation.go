// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values used when no source supplies the corresponding field.
// The API key deliberately has no fallback: it must be configured explicitly.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultTLSAddress     = "localhost:8443"
	defaultVersion        = "0.1.0"
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills optional fields that remained zero after all sources
// were merged.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.TLSAddress == "" {
		cfg.Server.TLSAddress = defaultTLSAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.Version == "" {
		cfg.App.Version = defaultVersion
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The API key is the only strictly required value: without it the
// authentication middleware cannot admit any request, so the process
// refuses to start.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.APIKey == "" {
		return ErrAPIKeyIsNotSpecified
	}

	if cfg.Server.TLSCertFile != "" && cfg.Server.TLSKeyFile == "" ||
		cfg.Server.TLSCertFile == "" && cfg.Server.TLSKeyFile != "" {
		return ErrIncompleteTLSConfigs
	}

	return nil
}
