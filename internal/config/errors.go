package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty default records file).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWatchConfigs indicates invalid watch settings
	// (for example, a non-positive refresh interval).
	ErrInvalidWatchConfigs = errors.New("invalid watch configuration")
)
