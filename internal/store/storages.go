package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/claude-switch/internal/config"
	"github.com/MKhiriev/claude-switch/internal/logger"
)

// Storages groups the registry repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// Directories is the SQLite-backed registry of project directories.
	Directories DirectoryRepository
	// Accounts is the SQLite-backed registry of Claude API accounts.
	Accounts AccountRepository

	db     *DB
	dbPath string
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Directories: NewDirectoryRepository(db, logger),
		Accounts:    NewAccountRepository(db, logger),
		db:          db,
		dbPath:      cfg.DB.DSN,
	}, nil
}

// DBPath returns the filesystem path of the registry database file. The sync
// service uploads and downloads this file as a whole.
func (s *Storages) DBPath() string {
	return s.dbPath
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
