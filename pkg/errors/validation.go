package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// hexColorRegex matches CSS hex colors in short (#RGB) or long (#RRGGBB) form.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// cssLengthRegex matches the subset of CSS lengths accepted for the canvas
// container: a positive number followed by px, %, vh or vw.
var cssLengthRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?(px|%|vh|vw)$`)

// ValidateColor checks that s is a CSS hex color such as "#4C78A8".
func ValidateColor(s string) error {
	if !hexColorRegex.MatchString(s) {
		return New(ErrCodeInvalidColor, "invalid color %q (want #RGB or #RRGGBB)", s)
	}
	return nil
}

// ValidateCSSLength checks a container dimension such as "900px" or "100%".
func ValidateCSSLength(s string) error {
	if !cssLengthRegex.MatchString(s) {
		return New(ErrCodeInvalidConfig, "invalid CSS length %q (want e.g. 900px or 100%%)", s)
	}
	return nil
}

// ValidateOutputPath validates a path the pipeline will write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}

// ValidateRedisURL checks that a cache URL uses the redis or rediss scheme.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "redis URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidConfig, "redis URL must use redis:// or rediss:// scheme")
	}
	return nil
}
