package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid persistence settings
	// (for example, a missing user database DSN, Mongo URI or Redis URI).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or negative session lifetime).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
