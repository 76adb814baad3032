package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the WebDAV server rejects the
	// configured credentials.
	ErrUnauthorized = errors.New("webdav unauthorized")

	// ErrRemoteNotFound is returned when the remote registry copy does not
	// exist yet (first sync from this machine).
	ErrRemoteNotFound = errors.New("remote registry not found")

	// ErrSyncDisabled is returned when a sync operation is invoked while no
	// WebDAV URL is configured.
	ErrSyncDisabled = errors.New("sync is not configured")
)
