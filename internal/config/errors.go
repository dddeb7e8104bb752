package config

import "errors"

// Startup validation errors. Matching one of these at boot means the process
// is misconfigured and must not begin serving traffic.
var (
	// ErrNoTokenSignKey indicates the token signing secret is missing.
	// Without it the server could neither issue nor verify session tokens.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN indicates the database connection string is missing.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty local storage path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
