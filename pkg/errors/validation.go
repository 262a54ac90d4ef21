package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidatePlayerName validates a player name supplied on the command line or
// in an HTTP query.
//
// The rules are conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
func ValidatePlayerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPlayer, "player name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidPlayer, "player name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPlayer, "player name contains invalid control characters")
		}
	}

	return nil
}

// ValidateMonth validates a month key (1-12).
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return New(ErrCodeInvalidInput, "month must be between 1 and 12 (got %d)", month)
	}
	return nil
}

// ValidateOutputPath validates a path an artifact will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..) after cleaning
func ValidateOutputPath(path string) error {
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

	if !filepath.IsAbs(path) {
		for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(path)), "/") {
			if part == ".." {
				return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
			}
		}
	}

	return nil
}

// ValidateArtifactID validates an artifact identifier received over HTTP.
// IDs are UUID strings; anything else is rejected before it reaches storage.
func ValidateArtifactID(id string) error {
	if len(id) != 36 {
		return New(ErrCodeInvalidInput, "invalid artifact id: %q", id)
	}
	for i, r := range id {
		switch i {
		case 8, 13, 18, 23:
			if r != '-' {
				return New(ErrCodeInvalidInput, "invalid artifact id: %q", id)
			}
		default:
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return New(ErrCodeInvalidInput, "invalid artifact id: %q", id)
			}
		}
	}
	return nil
}
