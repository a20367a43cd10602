//go:build unit
// +build unit

package items

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name      string
		item      Item
		shouldErr bool
	}{
		{"valid", Item{FolderID: 1, Name: "Tractor"}, false},
		{"valid with optionals", Item{FolderID: 1, Name: "Tractor", Description: "red", Location: "barn"}, false},
		// FolderID is only required on create; updates carry the zero value.
		{"no folder id", Item{Name: "Tractor"}, false},
		{"empty name", Item{FolderID: 1, Name: ""}, true},
		{"blank name", Item{FolderID: 1, Name: " \t "}, true},
		{"name too long", Item{FolderID: 1, Name: strings.Repeat("x", 256)}, true},
		{"negative folder id", Item{FolderID: -1, Name: "Tractor"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
