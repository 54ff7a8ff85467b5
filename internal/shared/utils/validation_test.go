package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		required bool
		wantErr  bool
	}{
		{"window id", "win_01HZX3J8W6Q0M0Y4V7K2B9N5CD", true, false},
		{"app id", "calculator", true, false},
		{"empty required", "", true, true},
		{"empty optional", "", false, false},
		{"path traversal", "../etc", true, true},
		{"too long", strings.Repeat("a", MaxIDLength+1), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id, "window_id", tt.required)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateViewport(t *testing.T) {
	assert.NoError(t, ValidateViewport(types.Viewport{Width: 1920, Height: 1080, TaskbarHeight: 48}))
	assert.Error(t, ValidateViewport(types.Viewport{Width: 0, Height: 1080}))
	assert.Error(t, ValidateViewport(types.Viewport{Width: 800, Height: 40, TaskbarHeight: 48}))
	assert.Error(t, ValidateViewport(types.Viewport{Width: MaxViewportDimension + 1, Height: 600}))
}

func TestValidateSnapLayout(t *testing.T) {
	for _, zone := range types.SnapLayouts {
		assert.NoError(t, ValidateSnapLayout(zone))
	}
	assert.Error(t, ValidateSnapLayout("centre"))
	assert.Error(t, ValidateSnapLayout(types.SnapNone))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Notes", SanitizeText("  <b>Notes</b> "))
	assert.Equal(t, "a & b", SanitizeText("a &amp; b"))
	assert.Equal(t, "", SanitizeText("<script>alert(1)</script>"))
}
