// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the claude-switch runtime configuration.
//
// Values are gathered from three sources and merged in order (later sources
// fill fields the earlier ones left empty): environment variables,
// command-line flags, and an optional JSON file whose path is itself taken
// from the first two sources. The merged result is validated and defaulted
// before use.
package config
