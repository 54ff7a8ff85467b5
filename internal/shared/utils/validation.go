package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/thekoushikdurgas/durgasos/backend/internal/shared/types"
)

// String length limits
const (
	MaxIDLength       = 128
	MaxNameLength     = 256
	MaxTitleLength    = 256
	MaxCategoryLength = 64
)

// Viewport limits
const (
	MaxViewportDimension = 16384
)

// Regular expressions for validation
var (
	// SafeIDPattern allows alphanumeric, hyphens, underscores
	SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil // Optional field, empty is OK
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	// Check for null bytes (security issue)
	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateID validates an ID field
func ValidateID(id, fieldName string, required bool) error {
	if err := ValidateString(id, fieldName, 1, MaxIDLength, required); err != nil {
		return err
	}

	if id != "" && !SafeIDPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (only alphanumeric, hyphens, and underscores allowed)", fieldName)
	}

	return nil
}

// ValidateName validates a desktop name
func ValidateName(name string, required bool) error {
	return ValidateString(name, "name", 1, MaxNameLength, required)
}

// ValidateTitle validates a window title
func ValidateTitle(title string) error {
	return ValidateString(title, "title", 1, MaxTitleLength, true)
}

// ValidateCategory validates an app category
func ValidateCategory(category string, required bool) error {
	if err := ValidateString(category, "category", 1, MaxCategoryLength, required); err != nil {
		return err
	}
	if category != "" && !SafeIDPattern.MatchString(category) {
		return fmt.Errorf("category contains invalid characters")
	}
	return nil
}

// ValidateSnapLayout validates a snap zone name
func ValidateSnapLayout(zone types.SnapLayout) error {
	if !zone.Valid() {
		return fmt.Errorf("unknown snap zone %q", zone)
	}
	return nil
}

// ValidateViewport validates host viewport dimensions
func ValidateViewport(vp types.Viewport) error {
	if !vp.Valid() {
		return fmt.Errorf("viewport must have positive width and height")
	}
	if vp.Width > MaxViewportDimension || vp.Height > MaxViewportDimension {
		return fmt.Errorf("viewport must not exceed %d pixels per side", MaxViewportDimension)
	}
	if vp.TaskbarHeight >= vp.Height {
		return fmt.Errorf("taskbar height must be smaller than viewport height")
	}
	return nil
}
