package folders

import "context"

// FolderService defines application-level operations on folders.
type FolderService interface {
	// List retrieves all folders ordered by creation time, newest first.
	List(ctx context.Context) ([]*Folder, error)

	// Create persists a new folder with the given name and returns it
	// with its store-assigned id.
	Create(ctx context.Context, name string) (*Folder, error)

	// Update replaces the name of the folder with the given id. No
	// existence check is performed: updating an unknown id succeeds and
	// still returns the given id and name.
	Update(ctx context.Context, id int64, name string) (*Folder, error)

	// Delete removes the folder with the given id. The store cascades
	// the delete to all items referencing the folder.
	Delete(ctx context.Context, id int64) error
}

// FolderRepository defines the interface for folder persistence operations.
type FolderRepository interface {
	// List retrieves all folders ordered by created_at descending
	List(ctx context.Context) ([]*Folder, error)
	// Create adds a new folder to the database and assigns its ID
	Create(ctx context.Context, folder *Folder) error
	// UpdateByID updates the name of a folder by ID
	UpdateByID(ctx context.Context, id int64, name string) error
	// DeleteByID deletes a folder by ID, cascading to its items
	DeleteByID(ctx context.Context, id int64) error
}
