// Package catalog provides the static extension-to-category classification
// table. The table is built once and never mutated afterwards; callers hold
// a reference and classify through it.
package catalog

import (
	"sort"
	"strings"

	"github.com/sdejongh/sortnorris/pkg/models"
)

var imageExtensions = []string{
	"jpg", "jpeg", "png", "gif", "bmp", "svg", "webp", "ico", "tiff", "tif",
	"heic", "heif", "raw", "cr2", "nef", "arw", "dng", "psd", "ai", "eps",
}

var videoExtensions = []string{
	"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm", "m4v", "mpeg", "mpg",
	"3gp", "3g2", "vob", "ogv", "mts", "m2ts", "ts",
}

var documentExtensions = []string{
	"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "rtf", "odt",
	"ods", "odp", "csv", "pages", "numbers", "key", "epub", "mobi", "djvu", "xps",
}

var musicExtensions = []string{
	"mp3", "wav", "flac", "aac", "ogg", "wma", "m4a", "aiff", "aif", "ape",
	"alac", "opus", "mid", "midi",
}

var archiveExtensions = []string{
	"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "dmg", "iso", "tgz", "tbz2",
	"txz", "cab", "lzh", "lha", "z", "sit", "sitx",
}

var codeExtensions = []string{
	"rs", "py", "js", "ts", "jsx", "tsx", "html", "htm", "css", "scss", "sass",
	"less", "json", "xml", "yaml", "yml", "toml", "md", "markdown", "sh",
	"bash", "zsh", "fish", "c", "cpp", "cc", "cxx", "h", "hpp", "hxx", "go",
	"java", "kt", "kts", "scala", "rb", "php", "pl", "pm", "swift", "m", "mm",
	"sql", "r", "lua", "vim", "el", "clj", "cljs", "edn", "ex", "exs", "erl",
	"hrl", "hs", "lhs", "ml", "mli", "fs", "fsi", "fsx", "dockerfile",
	"makefile", "cmake", "gradle", "sbt", "cabal",
}

// Catalog is the immutable extension lookup table
type Catalog struct {
	extensions map[string]models.Category
}

// New builds the classification catalog
func New() *Catalog {
	table := make(map[string]models.Category)

	add := func(exts []string, category models.Category) {
		for _, ext := range exts {
			table[ext] = category
		}
	}

	add(imageExtensions, models.CategoryImages)
	add(videoExtensions, models.CategoryVideos)
	add(documentExtensions, models.CategoryDocuments)
	add(musicExtensions, models.CategoryMusic)
	add(archiveExtensions, models.CategoryArchives)
	add(codeExtensions, models.CategoryCode)

	return &Catalog{extensions: table}
}

// Classify maps an extension (without leading dot, any case) to its
// category. Unknown or empty extensions classify as Others. Classification
// is total: it never fails.
func (c *Catalog) Classify(extension string) models.Category {
	if extension == "" {
		return models.CategoryOthers
	}
	if category, ok := c.extensions[strings.ToLower(extension)]; ok {
		return category
	}
	return models.CategoryOthers
}

// DefaultCategory returns the fallback category for files without an
// extension
func (c *Catalog) DefaultCategory() models.Category {
	return models.CategoryOthers
}

// Extensions returns the sorted extension list for a category. Others has
// no extensions of its own since it is the fallback bucket.
func (c *Catalog) Extensions(category models.Category) []string {
	var exts []string
	for ext, cat := range c.extensions {
		if cat == category {
			exts = append(exts, ext)
		}
	}
	sort.Strings(exts)
	return exts
}
