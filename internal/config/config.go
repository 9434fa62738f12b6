// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the memvault
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application name
	// and version reported to the backend.
	App App `envPrefix:"APP_"`

	// Adapter holds the hosted backend endpoint and request timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the client-local database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Security holds session-lock settings.
	Security Security `envPrefix:"SECURITY_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the application name used in notification titles and the
	// User-Agent of backend requests.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds configuration for the hosted backend the client talks to.
type Adapter struct {
	// BaseURL is the backend REST endpoint
	// (e.g. "https://memvault.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the public API key sent with every request.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the client-local persistence area.
type Storage struct {
	// DBPath is the filesystem path of the local SQLite database that
	// keeps the activity timestamp, the cached session, and pending
	// event reminders.
	// Env: STORAGE_DB_PATH
	DBPath string `env:"DB_PATH"`
}

// Security holds session-lock settings.
type Security struct {
	// InactivityThreshold is the idle duration after which the session
	// locks behind the PIN challenge.
	// Env: SECURITY_INACTIVITY_THRESHOLD
	InactivityThreshold time.Duration `env:"INACTIVITY_THRESHOLD"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// EventScanInterval is the upper bound on how long the event-reminder
	// job sleeps between rescans of the local store. A pending reminder
	// due sooner shortens the sleep to its fire instant.
	// Env: WORKERS_EVENT_SCAN_INTERVAL
	EventScanInterval time.Duration `env:"EVENT_SCAN_INTERVAL"`
}

// defaults returns the built-in fallback configuration merged in last, so
// it only fills fields no other source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    "MemVault",
			Version: "dev",
		},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DBPath: "memvault.db",
		},
		Security: Security{
			InactivityThreshold: 5 * time.Minute,
		},
		Workers: Workers{
			EventScanInterval: time.Minute,
		},
	}
}

// GetClientConfig assembles the client configuration from all sources and
// validates the result.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
