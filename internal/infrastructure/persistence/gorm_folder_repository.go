package persistence

import (
	"context"
	"fmt"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/infrastructure/persistence/models"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormFolderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormFolderRepository creates a new GORM-based FolderRepository implementation
func NewGormFolderRepository(db *gorm.DB, logger logger.Logger) (folders.FolderRepository, error) {
	return &gormFolderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormFolderRepository) List(ctx context.Context) ([]*folders.Folder, error) {
	var modelList []*models.FolderModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch folders: %w", err)
	}

	domainList := make([]*folders.Folder, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormFolderRepository) Create(ctx context.Context, folder *folders.Folder) error {
	// Validate domain entity (business rules)
	if err := folder.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.FolderModel{}
	model.FromDomain(folder)

	// Persist to database; the store assigns the surrogate key
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	folder.ID = model.ID

	r.logger.Info("Created folder with id ", folder.ID)
	return nil
}

func (r *gormFolderRepository) UpdateByID(ctx context.Context, id int64, name string) error {
	// Single UPDATE, no existence check: zero rows affected is not an error
	if err := r.db.WithContext(ctx).Model(&models.FolderModel{}).
		Where("id = ?", id).
		Update("name", name).Error; err != nil {
		return fmt.Errorf("failed to update folder: %w", err)
	}

	r.logger.Info("Updated folder with id ", id)
	return nil
}

func (r *gormFolderRepository) DeleteByID(ctx context.Context, id int64) error {
	// The items table declares ON DELETE CASCADE on folder_id, so
	// dependent items are removed by the store in the same statement.
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.FolderModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	r.logger.Info("Deleted folder with id ", id)
	return nil
}
