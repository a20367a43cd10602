package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlankValidation rejects strings that are empty or contain only whitespace.
// Names must carry at least one visible character at rest.
func NotBlankValidation(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
