package folders

import (
	"errors"
	"fmt"
	"time"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Folder entity
type Folder struct {
	ID        int64     `validate:"omitempty,min=1"`
	Name      string    `validate:"required,max=255,notBlankValidation"`
	CreatedAt time.Time
}

// Validate for validating Folder struct
func (f *Folder) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("notBlankValidation", validators.NotBlankValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(f)
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
