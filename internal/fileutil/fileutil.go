// Package fileutil provides filesystem helpers for the destructive remux
// path: size measurement, temp sibling naming, and atomic replacement.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSize returns the size of the file at path in bytes.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("stat %s: is a directory", path)
	}
	return info.Size(), nil
}

// TempSibling returns a temporary output path in the same directory as path,
// preserving the extension so container-format detection keeps working.
// The token keeps concurrent or crashed runs from colliding.
func TempSibling(path, token string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if token = strings.TrimSpace(token); token == "" {
		token = "tmp"
	}
	return base + ".sweep-" + token + ext
}

// Replace atomically renames src over dst. Both paths must live on the same
// filesystem; rename is a single atomic operation with no window where dst
// is missing or partial.
func Replace(src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("replace %s: %w", dst, err)
	}
	return nil
}
