package store

import (
	"context"

	"github.com/MKhiriev/claude-switch/models"
)

// DirectoryRepository is the registry of project directories claude-switch
// knows about.
type DirectoryRepository interface {
	Create(ctx context.Context, request models.CreateDirectoryRequest) (models.Directory, error)
	GetAll(ctx context.Context) ([]models.Directory, error)
	GetByID(ctx context.Context, id int64) (models.Directory, error)
	Update(ctx context.Context, id int64, request models.UpdateDirectoryRequest) (models.Directory, error)
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64) error
}

// AccountRepository is the registry of stored Claude API accounts.
type AccountRepository interface {
	Create(ctx context.Context, request models.CreateAccountRequest) (models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	GetByID(ctx context.Context, id int64) (models.Account, error)
	GetActive(ctx context.Context) (models.Account, error)
	Update(ctx context.Context, id int64, request models.UpdateAccountRequest) (models.Account, error)
	Delete(ctx context.Context, id int64) error
	SetActive(ctx context.Context, id int64) error
}
