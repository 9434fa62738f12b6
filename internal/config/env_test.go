// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_NAME":    "MemVault",
		"APP_VERSION": "1.2.3",

		"ADAPTER_BASE_URL":        "https://memvault.example.com",
		"ADAPTER_API_KEY":         "anon_key",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_PATH": "/var/lib/memvault/client.db",

		"SECURITY_INACTIVITY_THRESHOLD": "5m",

		"WORKERS_EVENT_SCAN_INTERVAL": "1m",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "MemVault", cfg.App.Name)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://memvault.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, "anon_key", cfg.Adapter.APIKey)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/memvault/client.db", cfg.Storage.DBPath)
	assert.Equal(t, 5*time.Minute, cfg.Security.InactivityThreshold)
	assert.Equal(t, time.Minute, cfg.Workers.EventScanInterval)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SECURITY_INACTIVITY_THRESHOLD", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}
