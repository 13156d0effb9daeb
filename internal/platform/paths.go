package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath normalizes a path for the current platform
func NormalizePath(path string) string {
	normalized := filepath.Clean(path)

	// On Windows, ensure UNC paths are preserved
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(path, "\\\\") && !strings.HasPrefix(normalized, "\\\\") {
			normalized = "\\\\" + normalized
		}
	}

	return normalized
}

// IsUNCPath checks if a path is a UNC path (Windows network share)
func IsUNCPath(path string) bool {
	if runtime.GOOS != "windows" {
		return false
	}
	return strings.HasPrefix(path, "\\\\") || strings.HasPrefix(path, "//")
}

// ResolveDirectory returns the absolute directory to organize: arg when
// given, otherwise the current working directory. A leading "~" is
// expanded to the home directory.
func ResolveDirectory(arg string) (string, error) {
	if arg == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	}

	if err := ValidatePath(arg); err != nil {
		return "", err
	}

	path, err := expandHome(arg)
	if err != nil {
		return "", err
	}
	path = NormalizePath(path)

	if IsUNCPath(path) {
		return path, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return abs, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// ValidatePath checks if a path is valid for the current platform
func ValidatePath(path string) error {
	if path == "" {
		return &PathError{Path: path, Message: "path is empty"}
	}

	if strings.ContainsRune(path, 0) {
		return &PathError{Path: path, Message: "path contains a NUL byte"}
	}

	// Check for invalid characters based on OS
	if runtime.GOOS == "windows" {
		invalidChars := []string{"<", ">", "\"", "|", "?", "*"}
		for _, char := range invalidChars {
			if strings.Contains(path, char) && !IsUNCPath(path) {
				return &PathError{Path: path, Message: "path contains invalid character: " + char}
			}
		}
	}

	return nil
}

// PathError represents a path validation error
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return "invalid path '" + e.Path + "': " + e.Message
}
