// Package fileops implements the low-level filesystem operations behind a
// sorting run: collision-free destination naming, the rename-then-copy move
// strategy and small path predicates.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extension returns the lowercased file extension without the leading dot.
// The second return value is false when the file has no extension. Dotfiles
// like ".gitignore" or ".png" count as extensionless: the part after the
// leading dot is the name, not an extension.
func Extension(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == "." || ext == base {
		return "", false
	}
	return strings.ToLower(strings.TrimPrefix(ext, ".")), true
}

// IsSymlink reports whether the path itself is a symbolic link
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// Exists reports whether the path names an existing filesystem entry.
// Lstat is used so dangling symlinks still occupy their name.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// EnsureDir creates the directory and all missing parents. It is a no-op
// when the directory already exists.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// splitName splits a filename into stem and extension. The extension keeps
// its leading dot so candidates can be rebuilt by concatenation.
func splitName(filename string) (stem, ext string) {
	ext = filepath.Ext(filename)
	stem = strings.TrimSuffix(filename, ext)
	if stem == "" {
		// Dotfiles like ".gitignore" have no extension in the sorting sense
		return filename, ""
	}
	return stem, ext
}
