package errors

import (
	"strings"
	"unicode"
)

// maxPathLength bounds user-supplied directory arguments.
const maxPathLength = 4096

// ValidateProjectDir checks a user-supplied project directory before it is
// touched on disk. Relative and absolute paths are both accepted; the
// directory itself is not required to exist.
//
// Rejected:
//   - empty or whitespace-only paths
//   - paths longer than 4096 bytes
//   - null bytes and other control characters
func ValidateProjectDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "project directory cannot be empty")
	}
	if len(dir) > maxPathLength {
		return New(ErrCodeInvalidPath, "project directory too long (max %d characters)", maxPathLength)
	}
	for _, r := range dir {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "project directory contains invalid characters")
		}
	}
	return nil
}
