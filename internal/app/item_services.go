package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/logger"
)

// itemService implements the ItemService interface for managing items
type itemService struct {
	itemRepository items.ItemRepository
	logger         logger.Logger
}

// NewItemService creates a new instance of ItemService
func NewItemService(itemRepository items.ItemRepository, logger logger.Logger) (items.ItemService, error) {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}, nil
}

// ListByFolder retrieves a folder's items, newest first.
func (s *itemService) ListByFolder(ctx context.Context, folderID int64) ([]*items.Item, error) {
	itemList, err := s.itemRepository.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return itemList, nil
}

// Create persists a new item and returns it with its assigned id.
func (s *itemService) Create(ctx context.Context, item *items.Item) (*items.Item, error) {
	item.CreatedAt = time.Now().UTC()

	if err := s.itemRepository.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// Update replaces the item's mutable fields. No existence check: the
// given values are echoed back even when zero rows were affected.
func (s *itemService) Update(ctx context.Context, item *items.Item) (*items.Item, error) {
	if err := s.itemRepository.UpdateByID(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// Delete removes the item.
func (s *itemService) Delete(ctx context.Context, id int64) error {
	if err := s.itemRepository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

// Search matches the query against the five searchable item fields and
// enriches each hit with its folder's name.
func (s *itemService) Search(ctx context.Context, query string) ([]*items.SearchResult, error) {
	results, err := s.itemRepository.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}

	s.logger.Debug("Search for ", query, " returned ", len(results), " items")
	return results, nil
}
