package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// specExtensions lists the file extensions accepted for diagram spec files.
var specExtensions = map[string]bool{
	".json": true,
	".toml": true,
	".yaml": true,
	".yml":  true,
}

// ValidateSpecFilename validates the name of a diagram spec file.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Extension must be one of .json, .toml, .yaml or .yml (case-insensitive)
func ValidateSpecFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "spec filename cannot be empty")
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "spec filename contains invalid control characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !specExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported spec file extension %q (must be .json, .toml, .yaml or .yml)", ext)
	}

	return nil
}

// ValidatePath validates a relative output path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
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

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
