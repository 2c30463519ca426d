package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates a path relative to the analysis root, such as an
// exclude pattern from a config file. It prevents patterns that would
// escape the root.
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

// ValidateRoot validates the directory argument given to the analyzer.
// Unlike ValidatePath it accepts absolute paths.
func ValidateRoot(root string) error {
	if strings.TrimSpace(root) == "" {
		return New(ErrCodeInvalidPath, "root directory cannot be empty")
	}
	for _, r := range root {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "root directory contains invalid characters")
		}
	}
	return nil
}

// javaIdentifierRegex matches a simple (unqualified) Java identifier.
var javaIdentifierRegex = regexp.MustCompile(`^[\p{L}_$][\p{L}\p{N}_$]*$`)

// ValidateTypeName validates a simple type name such as a marker annotation
// name from configuration ("Autowired", "RequiredArgsConstructor").
func ValidateTypeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "type name cannot be empty")
	}
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "type name too long (max 256 characters)")
	}
	if !javaIdentifierRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid type name: %q", name)
	}
	return nil
}

// ValidateExtension validates a source file extension such as ".java".
func ValidateExtension(ext string) error {
	if len(ext) < 2 || ext[0] != '.' {
		return New(ErrCodeInvalidInput, "extension must start with a dot: %q", ext)
	}
	if strings.ContainsAny(ext[1:], "./\\*? ") {
		return New(ErrCodeInvalidInput, "invalid extension: %q", ext)
	}
	return nil
}
