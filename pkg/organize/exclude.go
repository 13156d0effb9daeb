package organize

import (
	"fmt"
	"path/filepath"
	"strings"
)

// shouldExclude checks if a file name matches one of the exclude patterns.
// Only immediate entries are organized, so patterns are matched against
// the base name. Patterns ending in "/" name directories and never match
// a file.
func shouldExclude(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" || strings.HasSuffix(pattern, "/") {
			continue
		}
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// ValidatePatterns reports the first malformed exclude pattern
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}
	return nil
}
