package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsFillUnsetFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://memvault.example.com"}},
		defaults(),
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// явное значение сохраняется, остальное добивается дефолтами
	assert.Equal(t, "https://memvault.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Security.InactivityThreshold)
	assert.Equal(t, "memvault.db", cfg.Storage.DBPath)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Security: Security{InactivityThreshold: 2 * time.Minute}},
		&StructuredConfig{Security: Security{InactivityThreshold: 10 * time.Minute}},
		defaults(),
	)
	b.configs[0].Adapter.BaseURL = "https://a.example.com"

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.Security.InactivityThreshold)
}

func TestBuild_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty base url",
			mutate:  func(c *StructuredConfig) { c.Adapter.BaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "empty db path",
			mutate:  func(c *StructuredConfig) { c.Storage.DBPath = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "non-positive inactivity threshold",
			mutate:  func(c *StructuredConfig) { c.Security.InactivityThreshold = 0 },
			wantErr: ErrInvalidSecurityConfigs,
		},
		{
			name:    "non-positive scan interval",
			mutate:  func(c *StructuredConfig) { c.Workers.EventScanInterval = -time.Second },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			cfg.Adapter.BaseURL = "https://memvault.example.com"
			tt.mutate(cfg)

			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
