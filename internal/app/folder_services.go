package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/logger"
)

// folderService implements the FolderService interface for managing folders
type folderService struct {
	folderRepository folders.FolderRepository
	logger           logger.Logger
}

// NewFolderService creates a new instance of FolderService
func NewFolderService(folderRepository folders.FolderRepository, logger logger.Logger) (folders.FolderService, error) {
	return &folderService{
		folderRepository: folderRepository,
		logger:           logger,
	}, nil
}

// List retrieves all folders ordered by creation time, newest first.
func (s *folderService) List(ctx context.Context) ([]*folders.Folder, error) {
	folderList, err := s.folderRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folderList, nil
}

// Create persists a new folder and returns it with its assigned id.
func (s *folderService) Create(ctx context.Context, name string) (*folders.Folder, error) {
	folder := &folders.Folder{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.folderRepository.Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return folder, nil
}

// Update replaces the folder's name. No existence check: the given id
// and name are echoed back even when zero rows were affected.
func (s *folderService) Update(ctx context.Context, id int64, name string) (*folders.Folder, error) {
	if err := s.folderRepository.UpdateByID(ctx, id, name); err != nil {
		return nil, fmt.Errorf("failed to update folder: %w", err)
	}

	return &folders.Folder{ID: id, Name: name}, nil
}

// Delete removes the folder; the store cascades to its items.
func (s *folderService) Delete(ctx context.Context, id int64) error {
	if err := s.folderRepository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return nil
}
