// Package sorter implements the classification engine: directory traversal,
// relocation planning and the dual-mode (dry-run / execute) run loop.
package sorter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// Walker collects the files eligible for sorting under a target directory.
// Category folders directly under the target root are excluded so repeated
// runs never re-process already-sorted output.
type Walker struct {
	targetDir     string
	categoryNames map[string]bool
}

// NewWalker creates a walker rooted at targetDir
func NewWalker(targetDir string) *Walker {
	names := make(map[string]bool)
	for _, category := range models.AllCategories() {
		names[category.FolderName()] = true
	}
	return &Walker{
		targetDir:     filepath.Clean(targetDir),
		categoryNames: names,
	}
}

// Collect returns the eligible files. In non-recursive mode only the
// immediate file children of the target directory are returned; in
// recursive mode all descendants are walked depth-first, except
// category-named directories which are never entered. Symbolic links are
// neither followed nor collected. Order follows filesystem enumeration.
func (w *Walker) Collect(recursive bool) ([]string, error) {
	var files []string

	pending := []string{w.targetDir}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			if entry.Type()&fs.ModeSymlink != 0 {
				continue
			}

			if entry.IsDir() {
				if !recursive {
					continue
				}
				if w.categoryNames[entry.Name()] {
					continue
				}
				pending = append(pending, path)
				continue
			}

			if !entry.Type().IsRegular() {
				continue
			}
			if w.insideCategoryFolder(path) {
				continue
			}
			files = append(files, path)
		}
	}

	return files, nil
}

// insideCategoryFolder reports whether the file's parent is a category
// folder directly under the target root. Only one level of category-folder
// recognition applies; deeper directories with category names are ordinary
// directories.
func (w *Walker) insideCategoryFolder(path string) bool {
	parent := filepath.Dir(path)
	if filepath.Dir(parent) != w.targetDir {
		return false
	}
	return w.categoryNames[filepath.Base(parent)]
}
