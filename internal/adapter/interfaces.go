// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "context"

// RemoteStorage is the remote side of registry replication. The only remote
// backend currently implemented speaks WebDAV.
type RemoteStorage interface {
	// Check probes the remote endpoint and reports whether it is reachable
	// with the configured credentials.
	Check(ctx context.Context) error
	// Upload replaces the remote copy of the registry database with the
	// file at localPath.
	Upload(ctx context.Context, localPath string) error
	// Download replaces the file at localPath with the remote copy of the
	// registry database.
	Download(ctx context.Context, localPath string) error
}
