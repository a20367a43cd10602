package items

import "context"

// ItemService defines application-level operations on items.
type ItemService interface {
	// ListByFolder retrieves all items belonging to a folder ordered by
	// creation time, newest first.
	ListByFolder(ctx context.Context, folderID int64) ([]*Item, error)

	// Create persists a new item with defaults applied and returns it
	// with its store-assigned id.
	Create(ctx context.Context, item *Item) (*Item, error)

	// Update replaces the mutable fields of the item with the given id.
	// No existence check is performed: updating an unknown id succeeds
	// and still returns the given values.
	Update(ctx context.Context, item *Item) (*Item, error)

	// Delete removes the item with the given id.
	Delete(ctx context.Context, id int64) error

	// Search matches the query as a substring against name, description,
	// contact_info, location and notes. A row matches if any of the five
	// fields contains the query. Results carry the owning folder's name
	// and are ordered by creation time, newest first.
	Search(ctx context.Context, query string) ([]*SearchResult, error)
}

// ItemRepository defines the interface for item persistence operations.
type ItemRepository interface {
	// ListByFolder retrieves items of a folder ordered by created_at descending
	ListByFolder(ctx context.Context, folderID int64) ([]*Item, error)
	// Create adds a new item to the database and assigns its ID
	Create(ctx context.Context, item *Item) error
	// UpdateByID updates the mutable fields of an item by ID
	UpdateByID(ctx context.Context, item *Item) error
	// DeleteByID deletes an item by ID
	DeleteByID(ctx context.Context, id int64) error
	// Search performs a multi-field substring search joined with folder names
	Search(ctx context.Context, query string) ([]*SearchResult, error)
}
