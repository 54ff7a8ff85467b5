package utils

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy     *bluemonday.Policy
	stripPolicyOnce sync.Once
)

// SanitizeText strips all markup from host-supplied text and collapses
// surrounding whitespace. The shell renders titles as text, so entities are
// unescaped after stripping.
func SanitizeText(value string) string {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(value)))
}
