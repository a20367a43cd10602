package models

import (
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/items"
)

// ItemModel is the GORM database model for items (infrastructure concern).
// Optional text columns are NOT NULL with an empty-string default so
// absent values never surface as NULL. Booleans are persisted as 0/1.
type ItemModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	FolderID    int64     `gorm:"not null;index"`
	Name        string    `gorm:"not null;type:varchar(255)"`
	Description string    `gorm:"not null;default:''"`
	ContactInfo string    `gorm:"not null;default:''"`
	Location    string    `gorm:"not null;default:''"`
	IsActive    bool      `gorm:"not null;default:true"`
	IsVerified  bool      `gorm:"not null;default:false"`
	Notes       string    `gorm:"not null;default:''"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts GORM model to domain entity
func (m *ItemModel) ToDomain() *items.Item {
	return &items.Item{
		ID:          m.ID,
		FolderID:    m.FolderID,
		Name:        m.Name,
		Description: m.Description,
		ContactInfo: m.ContactInfo,
		Location:    m.Location,
		Notes:       m.Notes,
		IsActive:    m.IsActive,
		IsVerified:  m.IsVerified,
		CreatedAt:   m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ItemModel) FromDomain(i *items.Item) {
	m.ID = i.ID
	m.FolderID = i.FolderID
	m.Name = i.Name
	m.Description = i.Description
	m.ContactInfo = i.ContactInfo
	m.Location = i.Location
	m.Notes = i.Notes
	m.IsActive = i.IsActive
	m.IsVerified = i.IsVerified
	m.CreatedAt = i.CreatedAt
}

// ItemSearchRow is the scan target for the search query, an item row
// joined with the name of its owning folder.
type ItemSearchRow struct {
	ID          int64
	FolderID    int64
	Name        string
	Description string
	ContactInfo string
	Location    string
	IsActive    bool
	IsVerified  bool
	Notes       string
	CreatedAt   time.Time
	FolderName  string `gorm:"column:folder_name"`
}

// ToDomain converts a search row to a domain search result
func (r *ItemSearchRow) ToDomain() *items.SearchResult {
	return &items.SearchResult{
		Item: items.Item{
			ID:          r.ID,
			FolderID:    r.FolderID,
			Name:        r.Name,
			Description: r.Description,
			ContactInfo: r.ContactInfo,
			Location:    r.Location,
			Notes:       r.Notes,
			IsActive:    r.IsActive,
			IsVerified:  r.IsVerified,
			CreatedAt:   r.CreatedAt,
		},
		FolderName: r.FolderName,
	}
}
