// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package server

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goaltracker/internal/config"
)

func TestResolveTLSMode(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		expected TLSMode
	}{
		{
			name: "explicit off",
			cfg: &config.Config{
				Server: config.ServerConfig{Host: "example.com"},
				TLS:    config.TLSConfig{Mode: "off"},
			},
			expected: TLSModeOff,
		},
		{
			name: "explicit selfsigned",
			cfg: &config.Config{
				Server: config.ServerConfig{Host: "localhost"},
				TLS:    config.TLSConfig{Mode: "selfsigned"},
			},
			expected: TLSModeSelfSigned,
		},
		{
			name: "auto on localhost",
			cfg: &config.Config{
				Server: config.ServerConfig{Host: "localhost"},
				TLS:    config.TLSConfig{Mode: "auto"},
			},
			expected: TLSModeOff,
		},
		{
			name: "auto with cert files",
			cfg: &config.Config{
				Server: config.ServerConfig{Host: "example.com"},
				TLS:    config.TLSConfig{Mode: "auto", CertFile: "cert.pem", KeyFile: "key.pem"},
			},
			expected: TLSModeManual,
		},
		{
			name: "auto on remote host",
			cfg: &config.Config{
				Server: config.ServerConfig{Host: "example.com"},
				TLS:    config.TLSConfig{Mode: "auto"},
			},
			expected: TLSModeSelfSigned,
		},
		{
			name: "unknown mode falls back to auto",
			cfg: &config.Config{
				Server: config.ServerConfig{Host: "localhost"},
				TLS:    config.TLSConfig{Mode: "bogus"},
			},
			expected: TLSModeOff,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolveTLSMode(tt.cfg))
		})
	}
}

func TestSetupSelfSigned_GeneratesAndReuses(t *testing.T) {
	certDir := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "example.com"},
		TLS:    config.TLSConfig{Mode: "selfsigned", CertDir: certDir},
	}

	result, err := setupSelfSigned(cfg)
	require.NoError(t, err)
	require.NotNil(t, result.TLSConfig)
	assert.Equal(t, TLSModeSelfSigned, result.Mode)
	assert.FileExists(t, filepath.Join(certDir, "selfsigned", "cert.pem"))
	assert.FileExists(t, filepath.Join(certDir, "selfsigned", "key.pem"))

	// Second call reuses the stored certificate.
	again, err := setupSelfSigned(cfg)
	require.NoError(t, err)
	require.Len(t, again.TLSConfig.Certificates, 1)
	assert.Equal(t,
		result.TLSConfig.Certificates[0].Certificate[0],
		again.TLSConfig.Certificates[0].Certificate[0])
}

func TestSetupManual_MissingFiles(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "example.com"},
		TLS:    config.TLSConfig{Mode: "manual", CertFile: "/missing/cert.pem", KeyFile: "/missing/key.pem"},
	}

	_, err := setupManual(cfg)
	assert.Error(t, err)
}
