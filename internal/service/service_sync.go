package service

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/claude-switch/internal/adapter"
	"github.com/MKhiriev/claude-switch/internal/logger"
)

type syncService struct {
	remote adapter.RemoteStorage
	dbPath string
	logger *logger.Logger
}

// NewSyncService replicates the registry database file through the given
// remote storage. remote may be nil when sync is disabled; every operation
// then fails with [adapter.ErrSyncDisabled].
func NewSyncService(remote adapter.RemoteStorage, dbPath string, logger *logger.Logger) SyncService {
	return &syncService{
		remote: remote,
		dbPath: dbPath,
		logger: logger,
	}
}

func (s *syncService) Push(ctx context.Context) error {
	if s.remote == nil {
		return adapter.ErrSyncDisabled
	}

	if err := s.remote.Upload(ctx, s.dbPath); err != nil {
		return fmt.Errorf("push registry: %w", err)
	}

	s.logger.Info().Str("db", s.dbPath).Msg("registry pushed to remote")

	return nil
}

// Pull downloads the remote copy next to the registry file and renames it
// into place, so a half-finished download never clobbers the local registry.
func (s *syncService) Pull(ctx context.Context) error {
	if s.remote == nil {
		return adapter.ErrSyncDisabled
	}

	tmpPath := s.dbPath + ".sync-tmp"
	if err := s.remote.Download(ctx, tmpPath); err != nil {
		return fmt.Errorf("pull registry: %w", err)
	}

	if err := os.Rename(tmpPath, s.dbPath); err != nil {
		return fmt.Errorf("replace local registry: %w", err)
	}

	s.logger.Info().Str("db", s.dbPath).Msg("registry pulled from remote")

	return nil
}

func (s *syncService) Check(ctx context.Context) error {
	if s.remote == nil {
		return adapter.ErrSyncDisabled
	}
	return s.remote.Check(ctx)
}
