package service

import (
	"context"
	"time"

	"github.com/MKhiriev/claude-switch/models"
)

// DirectoryService manages the registry of project directories.
type DirectoryService interface {
	Register(ctx context.Context, request models.CreateDirectoryRequest) (models.Directory, error)
	List(ctx context.Context) ([]models.Directory, error)
	Get(ctx context.Context, id int64) (models.Directory, error)
	Update(ctx context.Context, id int64, request models.UpdateDirectoryRequest) (models.Directory, error)
	Remove(ctx context.Context, id int64) error
}

// AccountService manages the registry of Claude API accounts.
type AccountService interface {
	Add(ctx context.Context, request models.CreateAccountRequest) (models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	Get(ctx context.Context, id int64) (models.Account, error)
	Active(ctx context.Context) (models.Account, error)
	Update(ctx context.Context, id int64, request models.UpdateAccountRequest) (models.Account, error)
	Remove(ctx context.Context, id int64) error
}

// SwitchService applies, inspects, and clears credentials of registered
// directories. It serializes operations per directory root, as the
// underlying settings engine is read-modify-write without locking.
type SwitchService interface {
	// Apply injects the account's credentials into the directory's
	// settings and marks both records active.
	Apply(ctx context.Context, directoryID, accountID int64, sandbox bool) error
	// Clear removes credentials from the directory's settings.
	Clear(ctx context.Context, directoryID int64) error
	// Current returns the credentials currently present in the directory's
	// settings.
	Current(ctx context.Context, directoryID int64) (map[string]string, error)
}

// SyncService replicates the registry database through remote storage.
type SyncService interface {
	// Push uploads the local registry to the remote.
	Push(ctx context.Context) error
	// Pull replaces the local registry with the remote copy. The registry
	// connection must be reopened afterwards.
	Pull(ctx context.Context) error
	// Check probes remote reachability.
	Check(ctx context.Context) error
}

// SyncJob runs Push on a ticker in the background.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
