package v1

import (
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"
)

// ErrorResponse is the wire format for all failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirms delete operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateFolderRequest is the body of POST /api/folders.
type CreateFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateFolderRequest is the body of PUT /api/folders/:id.
type UpdateFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

// FolderResponse is a folder as returned by list.
type FolderResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// FolderMutationResponse is the body of folder create and update
// responses: the id and name, without the timestamp. Updates echo the
// given values whether or not any row was affected.
type FolderMutationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateItemRequest is the body of POST /api/items. The booleans are
// pointers so absence is distinguishable from an explicit false:
// is_active defaults to true, is_verified to false.
type CreateItemRequest struct {
	FolderID    int64  `json:"folder_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ContactInfo string `json:"contact_info"`
	Location    string `json:"location"`
	IsActive    *bool  `json:"is_active"`
	IsVerified  *bool  `json:"is_verified"`
	Notes       string `json:"notes"`
}

// UpdateItemRequest is the body of PUT /api/items/:id. It carries the
// same fields as create minus folder_id, which is immutable.
type UpdateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ContactInfo string `json:"contact_info"`
	Location    string `json:"location"`
	IsActive    *bool  `json:"is_active"`
	IsVerified  *bool  `json:"is_verified"`
	Notes       string `json:"notes"`
}

// ItemResponse is an item as returned by list and create.
type ItemResponse struct {
	ID          int64     `json:"id"`
	FolderID    int64     `json:"folder_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ContactInfo string    `json:"contact_info"`
	Location    string    `json:"location"`
	IsActive    bool      `json:"is_active"`
	IsVerified  bool      `json:"is_verified"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemUpdateResponse echoes the updated fields of an item.
type ItemUpdateResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ContactInfo string `json:"contact_info"`
	Location    string `json:"location"`
	IsActive    bool   `json:"is_active"`
	IsVerified  bool   `json:"is_verified"`
	Notes       string `json:"notes"`
}

// SearchItemResponse is an item enriched with the name of its folder.
type SearchItemResponse struct {
	ItemResponse
	FolderName string `json:"folder_name"`
}

func newFolderResponse(folder *folders.Folder) FolderResponse {
	return FolderResponse{
		ID:        folder.ID,
		Name:      folder.Name,
		CreatedAt: folder.CreatedAt,
	}
}

func newItemResponse(item *items.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		FolderID:    item.FolderID,
		Name:        item.Name,
		Description: item.Description,
		ContactInfo: item.ContactInfo,
		Location:    item.Location,
		IsActive:    item.IsActive,
		IsVerified:  item.IsVerified,
		Notes:       item.Notes,
		CreatedAt:   item.CreatedAt,
	}
}

func newSearchItemResponse(result *items.SearchResult) SearchItemResponse {
	return SearchItemResponse{
		ItemResponse: newItemResponse(&result.Item),
		FolderName:   result.FolderName,
	}
}

// toItem builds the domain entity with defaults applied: absent
// booleans coerce to is_active=true, is_verified=false, and absent text
// fields are stored as empty strings.
func (r *CreateItemRequest) toItem() *items.Item {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	isVerified := false
	if r.IsVerified != nil {
		isVerified = *r.IsVerified
	}

	return &items.Item{
		FolderID:    r.FolderID,
		Name:        r.Name,
		Description: r.Description,
		ContactInfo: r.ContactInfo,
		Location:    r.Location,
		Notes:       r.Notes,
		IsActive:    isActive,
		IsVerified:  isVerified,
	}
}

// toItem applies the same default policy as create, uniformly.
func (r *UpdateItemRequest) toItem(id int64) *items.Item {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	isVerified := false
	if r.IsVerified != nil {
		isVerified = *r.IsVerified
	}

	return &items.Item{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		ContactInfo: r.ContactInfo,
		Location:    r.Location,
		Notes:       r.Notes,
		IsActive:    isActive,
		IsVerified:  isVerified,
	}
}
