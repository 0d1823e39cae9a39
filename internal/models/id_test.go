package models_test

import (
	"testing"

	"chatterbox/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"canonical", "df5c8196-f428-4bc6-9b26-c4a0a0f1f4d2", true},
		{"urn prefix", "urn:uuid:df5c8196-f428-4bc6-9b26-c4a0a0f1f4d2", false},
		{"braced", "{df5c8196-f428-4bc6-9b26-c4a0a0f1f4d2}", false},
		{"no hyphens", "df5c8196f4284bc69b26c4a0a0f1f4d2", false},
		{"uppercase", "DF5C8196-F428-4BC6-9B26-C4A0A0F1F4D2", false},
		{"empty", "", false},
		{"short hex", "df5c8196", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.ValidID(tt.id))
		})
	}
}
