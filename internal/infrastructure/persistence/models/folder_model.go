package models

import (
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/domain/folders"
)

// FolderModel is the GORM database model for folders (infrastructure concern)
type FolderModel struct {
	ID        int64       `gorm:"primaryKey;autoIncrement"`
	Name      string      `gorm:"not null;type:varchar(255)"`
	CreatedAt time.Time   `gorm:"not null;index"`
	Items     []ItemModel `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (FolderModel) TableName() string {
	return "folders"
}

// ToDomain converts GORM model to domain entity
func (m *FolderModel) ToDomain() *folders.Folder {
	return &folders.Folder{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FolderModel) FromDomain(f *folders.Folder) {
	m.ID = f.ID
	m.Name = f.Name
	m.CreatedAt = f.CreatedAt
}
