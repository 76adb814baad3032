// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged configuration for internal consistency. Sync is
// optional: an empty WebDAV URL disables it, and the remaining sync fields
// are only inspected when a URL is present.
func (c *StructuredConfig) validate() error {
	if c.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database path", ErrInvalidStorageConfigs)
	}

	if c.Sync.URL != "" {
		parsed, err := url.Parse(c.Sync.URL)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSyncConfigs, err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidSyncConfigs, parsed.Scheme)
		}
	}

	return nil
}
