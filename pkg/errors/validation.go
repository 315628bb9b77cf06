package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// Viewport limits. Anything outside is almost certainly a unit mix-up
// (e.g. device pixels times a scale factor) rather than a real window.
const (
	MaxViewportDimension = 20000
	maxTopicIDLength     = 256
	maxPathLength        = 500
)

// ValidateViewport validates host window dimensions before they are turned
// into layout bounds.
func ValidateViewport(width, height float64) error {
	for _, d := range []struct {
		name  string
		value float64
	}{{"width", width}, {"height", height}} {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) {
			return New(ErrCodeInvalidViewport, "viewport %s must be a finite number", d.name)
		}
		if d.value <= 0 {
			return New(ErrCodeInvalidViewport, "viewport %s must be positive, got %v", d.name, d.value)
		}
		if d.value > MaxViewportDimension {
			return New(ErrCodeInvalidViewport, "viewport %s too large (max %d)", d.name, MaxViewportDimension)
		}
	}
	return nil
}

// ValidateTopicID validates an externally supplied topic id. Empty ids are
// allowed here because the engine substitutes a synthetic identity for them;
// only ids that could break keys or file names are rejected.
func ValidateTopicID(id string) error {
	if len(id) > maxTopicIDLength {
		return New(ErrCodeInvalidTopics, "topic id too long (max %d characters)", maxTopicIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTopics, "topic id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateFormat checks an output format against the supported set.
func ValidateFormat(format string, supported map[string]bool) error {
	if !supported[format] {
		return New(ErrCodeInvalidFormat, "unsupported format %q", format)
	}
	return nil
}

// ValidatePath validates an input or output file path given on the command
// line or in configuration.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	return nil
}

// ValidateExtension checks that path ends in one of the allowed extensions.
func ValidateExtension(path string, allowed ...string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported file type %q (want one of %s)", ext, strings.Join(allowed, ", "))
}
