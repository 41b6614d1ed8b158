package models

// Category is a file-type bucket. Its value doubles as the name of the
// destination folder created under the target directory.
type Category string

const (
	// CategoryImages holds picture files (photos, vector art, raw formats)
	CategoryImages Category = "Images"
	// CategoryVideos holds video files
	CategoryVideos Category = "Videos"
	// CategoryDocuments holds office documents, ebooks and plain text
	CategoryDocuments Category = "Documents"
	// CategoryMusic holds audio files
	CategoryMusic Category = "Music"
	// CategoryArchives holds compressed archives and disk images
	CategoryArchives Category = "Archives"
	// CategoryCode holds source code and configuration files
	CategoryCode Category = "Code"
	// CategoryOthers is the fallback for unknown or missing extensions
	CategoryOthers Category = "Others"
)

// AllCategories returns every category in display order
func AllCategories() []Category {
	return []Category{
		CategoryImages,
		CategoryVideos,
		CategoryDocuments,
		CategoryMusic,
		CategoryArchives,
		CategoryCode,
		CategoryOthers,
	}
}

// FolderName returns the destination folder name for the category
func (c Category) FolderName() string {
	return string(c)
}

// String implements fmt.Stringer
func (c Category) String() string {
	return string(c)
}

// Valid reports whether the category is one of the known buckets
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}
