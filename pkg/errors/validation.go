package errors

import (
	"strings"
	"unicode"
)

// MaxNotationLength caps accepted notation strings. Target inputs are
// small reagent molecules of at most a few hundred characters; the cap
// keeps pathological inputs from tying up the renderer.
const MaxNotationLength = 4096

// ValidateNotation validates a notation string before it enters the
// pipeline. The parser itself is lenient and never fails, so this is a
// front-door check for callers (CLI, embedding applications) that want
// to reject obviously unusable input early.
//
// The rules are intentionally conservative:
//   - No empty or all-whitespace strings
//   - No control characters
//   - Maximum length of MaxNotationLength
func ValidateNotation(notation string) error {
	if strings.TrimSpace(notation) == "" {
		return New(ErrCodeEmptyNotation, "notation cannot be empty")
	}

	if len(notation) > MaxNotationLength {
		return New(ErrCodeInvalidNotation, "notation too long (max %d characters)", MaxNotationLength)
	}

	for _, r := range notation {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNotation, "notation contains control characters")
		}
	}

	return nil
}
