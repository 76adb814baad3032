package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid registry storage settings
	// (for example, an empty database path after defaulting).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid WebDAV sync settings
	// (for example, an unparseable base URL).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
