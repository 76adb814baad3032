package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/claude-switch/internal/claudeconfig"
	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/internal/store"
)

type switchService struct {
	directories store.DirectoryRepository
	accounts    store.AccountRepository
	logger      *logger.Logger

	// rootLocks serializes settings access per directory root. The engine
	// underneath is read-modify-write against plain files, so concurrent
	// writers against one root would lose updates.
	mu        sync.Mutex
	rootLocks map[string]*sync.Mutex
}

// NewSwitchService builds the service that moves credentials between the
// registry and project settings files.
func NewSwitchService(directories store.DirectoryRepository, accounts store.AccountRepository, logger *logger.Logger) SwitchService {
	return &switchService{
		directories: directories,
		accounts:    accounts,
		logger:      logger,
		rootLocks:   make(map[string]*sync.Mutex),
	}
}

func (s *switchService) rootLock(root string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.rootLocks[root]
	if !ok {
		lock = &sync.Mutex{}
		s.rootLocks[root] = lock
	}
	return lock
}

func (s *switchService) Apply(ctx context.Context, directoryID, accountID int64, sandbox bool) error {
	directory, err := s.directories.GetByID(ctx, directoryID)
	if err != nil {
		return fmt.Errorf("apply credentials: %w", err)
	}
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("apply credentials: %w", err)
	}

	lock := s.rootLock(directory.Path)
	lock.Lock()
	defer lock.Unlock()

	manager, err := claudeconfig.NewManager(directory.Path, s.logger)
	if err != nil {
		return fmt.Errorf("apply credentials to %s: %w", directory.Path, err)
	}

	if err = manager.ApplyCredentials(account.Token, account.BaseURL, sandbox); err != nil {
		return fmt.Errorf("apply credentials to %s: %w", directory.Path, err)
	}

	// the switched-to pair becomes the active one
	if err = s.directories.SetActive(ctx, directoryID); err != nil {
		return fmt.Errorf("mark directory active: %w", err)
	}
	if err = s.accounts.SetActive(ctx, accountID); err != nil {
		return fmt.Errorf("mark account active: %w", err)
	}

	s.logger.Info().
		Str("directory", directory.Path).
		Str("account", account.Name).
		Bool("sandbox", sandbox).
		Msg("switched directory to account")

	return nil
}

func (s *switchService) Clear(ctx context.Context, directoryID int64) error {
	directory, err := s.directories.GetByID(ctx, directoryID)
	if err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}

	lock := s.rootLock(directory.Path)
	lock.Lock()
	defer lock.Unlock()

	manager, err := claudeconfig.NewManager(directory.Path, s.logger)
	if err != nil {
		return fmt.Errorf("clear credentials of %s: %w", directory.Path, err)
	}

	if err = manager.ClearCredentials(); err != nil {
		return fmt.Errorf("clear credentials of %s: %w", directory.Path, err)
	}

	return nil
}

func (s *switchService) Current(ctx context.Context, directoryID int64) (map[string]string, error) {
	directory, err := s.directories.GetByID(ctx, directoryID)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	lock := s.rootLock(directory.Path)
	lock.Lock()
	defer lock.Unlock()

	manager, err := claudeconfig.NewManager(directory.Path, s.logger)
	if err != nil {
		return nil, fmt.Errorf("read credentials of %s: %w", directory.Path, err)
	}

	creds, err := manager.Credentials()
	if err != nil {
		return nil, fmt.Errorf("read credentials of %s: %w", directory.Path, err)
	}

	return creds, nil
}
