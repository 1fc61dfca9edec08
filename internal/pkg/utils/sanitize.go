package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// descriptionPolicy allows the restricted HTML subset permitted in room
// descriptions. Everything else in a room is plain text.
var descriptionPolicy = bluemonday.UGCPolicy()

// strictPolicy strips all markup
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeDescription keeps only the allowed HTML subset of a room
// description.
func SanitizeDescription(s string) string {
	return strings.TrimSpace(descriptionPolicy.Sanitize(s))
}

// SanitizeText strips all HTML and control characters from a plain-text
// field.
func SanitizeText(s string) string {
	s = strictPolicy.Sanitize(s)
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
