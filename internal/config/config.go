// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// StructuredConfig is the top-level configuration container for
// claude-switch. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds the local registry database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the WebDAV endpoint settings used to replicate the
	// registry database across machines. Sync is disabled when the URL is
	// empty.
	Sync Sync `envPrefix:"SYNC_"`

	// Logs holds the log file settings of the interactive client.
	Logs Logs `envPrefix:"LOGS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the registry persistence backend.
type Storage struct {
	// DB holds the SQLite registry settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local registry database.
type DB struct {
	// DSN is the filesystem path of the SQLite database file.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds WebDAV replication settings for the registry database.
type Sync struct {
	// URL is the base URL of the WebDAV server (e.g.
	// "https://dav.example.com/remote.php/dav/files/user"). An empty URL
	// disables sync entirely.
	// Env: SYNC_WEBDAV_URL
	URL string `env:"WEBDAV_URL"`

	// Username is the WebDAV basic-auth user. Optional.
	// Env: SYNC_WEBDAV_USERNAME
	Username string `env:"WEBDAV_USERNAME"`

	// Password is the WebDAV basic-auth password. Optional.
	// Env: SYNC_WEBDAV_PASSWORD
	Password string `env:"WEBDAV_PASSWORD"`

	// RemoteDir is the collection on the WebDAV server that holds the
	// replicated database file.
	// Env: SYNC_REMOTE_DIR
	RemoteDir string `env:"REMOTE_DIR"`

	// Interval defines how often the background sync job pushes the
	// registry (e.g. "10m", "1h").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// DeviceID identifies this installation in the X-Device-ID header of
	// sync requests. Generated when empty.
	// Env: SYNC_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`
}

// Logs holds log output settings.
type Logs struct {
	// Path is the log file location. When empty the log file is placed
	// next to the executable.
	// Env: LOGS_PATH
	Path string `env:"PATH"`
}

// GetConfig loads, merges, defaults, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}

// applyDefaults fills the fields every run needs but no source provided.
func (c *StructuredConfig) applyDefaults() {
	if c.Storage.DB.DSN == "" {
		execPath, _ := os.Executable()
		c.Storage.DB.DSN = filepath.Join(filepath.Dir(execPath), "claude-switch.db")
	}
	if c.Sync.Interval <= 0 {
		c.Sync.Interval = 10 * time.Minute
	}
	if c.Sync.RemoteDir == "" {
		c.Sync.RemoteDir = "claude-switch"
	}
	if c.Sync.DeviceID == "" {
		c.Sync.DeviceID = uuid.NewString()
	}
}
