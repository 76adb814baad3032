package service

import (
	"github.com/MKhiriev/claude-switch/internal/adapter"
	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/internal/store"
)

// Services groups all application services into a single value passed to the
// TUI and the client app.
type Services struct {
	DirectoryService DirectoryService
	AccountService   AccountService
	SwitchService    SwitchService
	SyncService      SyncService
	SyncJob          SyncJob
}

// NewServices wires the service layer on top of the storage layer and the
// optional remote storage. remote may be nil when sync is not configured.
func NewServices(storages *store.Storages, remote adapter.RemoteStorage, log *logger.Logger) (*Services, error) {
	syncSvc := NewSyncService(remote, storages.DBPath(), log)

	return &Services{
		DirectoryService: NewDirectoryService(storages.Directories, log),
		AccountService:   NewAccountService(storages.Accounts, log),
		SwitchService:    NewSwitchService(storages.Directories, storages.Accounts, log),
		SyncService:      syncSvc,
		SyncJob:          NewSyncJob(syncSvc),
	}, nil
}
