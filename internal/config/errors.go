package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend adapter settings
	// (for example, missing base URL or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSecurityConfigs indicates invalid session-lock settings
	// (for example, a non-positive inactivity threshold).
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a non-positive scan interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
