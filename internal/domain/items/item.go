package items

import (
	"errors"
	"fmt"
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Item entity. The optional text fields are stored as empty strings
// when absent, never as NULL. FolderID is only required on create; the
// store enforces referential integrity via cascade delete.
type Item struct {
	ID          int64  `validate:"omitempty,min=1"`
	FolderID    int64  `validate:"omitempty,min=1"`
	Name        string `validate:"required,max=255,notBlankValidation"`
	Description string
	ContactInfo string
	Location    string
	Notes       string
	IsActive    bool
	IsVerified  bool
	CreatedAt   time.Time
}

// SearchResult is an item enriched with the name of its owning folder.
type SearchResult struct {
	Item
	FolderName string
}

// Validate for validating Item struct
func (i *Item) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("notBlankValidation", validators.NotBlankValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(i)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
