// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive application runtime.
//
// It wires the terminal UI, the registry services, and the background sync
// job into a single process lifecycle.
package client
