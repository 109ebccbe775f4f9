package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds element identifiers read from snapshots and flags.
const maxIDLength = 256

// ValidateID validates an element identifier supplied by a user or a
// snapshot file. Identifiers are opaque strings, but they end up in DOT
// output and terminal tables, so the rules are conservative:
//   - No empty identifiers
//   - No control characters
//   - No double quotes
//   - Maximum length of 256 characters
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "identifier cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "identifier too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "identifier contains invalid control characters")
		}
	}

	if strings.Contains(id, `"`) {
		return New(ErrCodeInvalidInput, "identifier cannot contain double quotes")
	}

	return nil
}

// ValidatePath validates a snapshot or output path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateIDs validates every identifier in ids and reports the first
// failure together with its position.
func ValidateIDs(ids []string) error {
	for i, id := range ids {
		if err := ValidateID(id); err != nil {
			return Wrap(ErrCodeInvalidInput, err, "identifier #%d", i+1)
		}
	}
	return nil
}
