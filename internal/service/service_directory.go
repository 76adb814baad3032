package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/claude-switch/internal/logger"
	"github.com/MKhiriev/claude-switch/internal/store"
	"github.com/MKhiriev/claude-switch/models"
)

type directoryService struct {
	directories store.DirectoryRepository
	logger      *logger.Logger
}

// NewDirectoryService wraps the directory repository with input validation.
func NewDirectoryService(directories store.DirectoryRepository, logger *logger.Logger) DirectoryService {
	return &directoryService{
		directories: directories,
		logger:      logger,
	}
}

func (s *directoryService) Register(ctx context.Context, request models.CreateDirectoryRequest) (models.Directory, error) {
	request.Name = strings.TrimSpace(request.Name)
	request.Path = strings.TrimSpace(request.Path)

	if request.Name == "" {
		return models.Directory{}, ErrEmptyDirectoryName
	}
	if request.Path == "" {
		return models.Directory{}, ErrEmptyDirectoryPath
	}

	directory, err := s.directories.Create(ctx, request)
	if err != nil {
		return models.Directory{}, fmt.Errorf("register directory: %w", err)
	}

	s.logger.Info().
		Str("name", directory.Name).
		Str("path", directory.Path).
		Msg("directory registered")

	return directory, nil
}

func (s *directoryService) List(ctx context.Context) ([]models.Directory, error) {
	directories, err := s.directories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list directories: %w", err)
	}
	return directories, nil
}

func (s *directoryService) Get(ctx context.Context, id int64) (models.Directory, error) {
	directory, err := s.directories.GetByID(ctx, id)
	if err != nil {
		return models.Directory{}, fmt.Errorf("get directory %d: %w", id, err)
	}
	return directory, nil
}

func (s *directoryService) Update(ctx context.Context, id int64, request models.UpdateDirectoryRequest) (models.Directory, error) {
	if request.Path != nil && strings.TrimSpace(*request.Path) == "" {
		return models.Directory{}, ErrEmptyDirectoryPath
	}

	directory, err := s.directories.Update(ctx, id, request)
	if err != nil {
		return models.Directory{}, fmt.Errorf("update directory %d: %w", id, err)
	}
	return directory, nil
}

// Remove drops the registry record only; nothing is deleted on disk.
func (s *directoryService) Remove(ctx context.Context, id int64) error {
	if err := s.directories.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove directory %d: %w", id, err)
	}

	s.logger.Info().Int64("id", id).Msg("directory removed from registry")

	return nil
}
