package persistence

import (
	"context"
	"fmt"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/infrastructure/persistence/models"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/logger"

	"gorm.io/gorm"
)

// searchColumns are the item columns matched against the search query.
var searchColumns = []string{"name", "description", "contact_info", "location", "notes"}

type gormItemRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormItemRepository creates a new GORM-based ItemRepository implementation
func NewGormItemRepository(db *gorm.DB, logger logger.Logger) (items.ItemRepository, error) {
	return &gormItemRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormItemRepository) ListByFolder(ctx context.Context, folderID int64) ([]*items.Item, error) {
	var modelList []*models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}

	domainList := make([]*items.Item, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormItemRepository) Create(ctx context.Context, item *items.Item) error {
	// Validate domain entity (business rules)
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.ItemModel{}
	model.FromDomain(item)

	// Persist to database; folder existence is enforced by the foreign
	// key constraint, not checked here.
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	item.ID = model.ID

	r.logger.Info("Created item with id ", item.ID)
	return nil
}

func (r *gormItemRepository) UpdateByID(ctx context.Context, item *items.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ItemModel{}
	model.FromDomain(item)

	// Single UPDATE of the mutable fields, no existence check. Select
	// forces zero values (empty strings, false) to be written too.
	if err := r.db.WithContext(ctx).Model(&models.ItemModel{}).
		Where("id = ?", item.ID).
		Select("name", "description", "contact_info", "location", "notes", "is_active", "is_verified").
		Updates(model).Error; err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.logger.Info("Updated item with id ", item.ID)
	return nil
}

func (r *gormItemRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	r.logger.Info("Deleted item with id ", id)
	return nil
}

func (r *gormItemRepository) Search(ctx context.Context, query string) ([]*items.SearchResult, error) {
	pattern := "%" + query + "%"

	condition := ""
	args := make([]interface{}, 0, len(searchColumns))
	for i, column := range searchColumns {
		if i > 0 {
			condition += " OR "
		}
		condition += fmt.Sprintf("items.%s LIKE ?", column)
		args = append(args, pattern)
	}

	var rows []*models.ItemSearchRow
	if err := r.db.WithContext(ctx).
		Table("items").
		Select("items.*, folders.name AS folder_name").
		Joins("JOIN folders ON folders.id = items.folder_id").
		Where(condition, args...).
		Order("items.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	results := make([]*items.SearchResult, len(rows))
	for i, row := range rows {
		results[i] = row.ToDomain()
	}

	return results, nil
}
