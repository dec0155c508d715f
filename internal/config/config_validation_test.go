package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name:    "missing API key is fatal",
			cfg:     StructuredConfig{},
			wantErr: ErrAPIKeyIsNotSpecified,
		},
		{
			name: "API key alone is enough",
			cfg: StructuredConfig{
				Auth: Auth{APIKey: "secret"},
			},
		},
		{
			name: "cert without key is rejected",
			cfg: StructuredConfig{
				Auth:   Auth{APIKey: "secret"},
				Server: Server{TLSCertFile: "/etc/certs/server.crt"},
			},
			wantErr: ErrIncompleteTLSConfigs,
		},
		{
			name: "key without cert is rejected",
			cfg: StructuredConfig{
				Auth:   Auth{APIKey: "secret"},
				Server: Server{TLSKeyFile: "/etc/certs/server.key"},
			},
			wantErr: ErrIncompleteTLSConfigs,
		},
		{
			name: "full TLS pair is accepted",
			cfg: StructuredConfig{
				Auth: Auth{APIKey: "secret"},
				Server: Server{
					TLSCertFile: "/etc/certs/server.crt",
					TLSKeyFile:  "/etc/certs/server.key",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultTLSAddress, cfg.Server.TLSAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultVersion, cfg.App.Version)
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{Version: "9.9.9"},
		Server: Server{
			HTTPAddress:    "0.0.0.0:9000",
			RequestTimeout: time.Minute,
		},
	}
	cfg.applyDefaults()

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

func TestIsDevelopment(t *testing.T) {
	require.True(t, App{Environment: "development"}.IsDevelopment())
	require.True(t, App{Environment: "Development"}.IsDevelopment())
	require.False(t, App{Environment: "production"}.IsDevelopment())
	require.False(t, App{}.IsDevelopment())
}
