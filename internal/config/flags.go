package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-server backend base URL
//	-api-key backend API key
//	-d local database path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-inactivity-threshold idle duration before the session locks (e.g., "5m")
//	-event-scan-interval event reminder rescan interval (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var serverURL string
	var apiKey string
	var dbPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var inactivityThreshold time.Duration
	var eventScanInterval time.Duration

	flag.StringVar(&serverURL, "server", "", "Backend base URL")
	flag.StringVar(&apiKey, "api-key", "", "Backend API key")
	flag.StringVar(&dbPath, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&inactivityThreshold, "inactivity-threshold", 0, "Idle duration before the session locks (e.g., 5m)")
	flag.DurationVar(&eventScanInterval, "event-scan-interval", 0, "Event reminder rescan interval (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        serverURL,
			APIKey:         apiKey,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DBPath: dbPath,
		},
		Security: Security{
			InactivityThreshold: inactivityThreshold,
		},
		Workers: Workers{
			EventScanInterval: eventScanInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
