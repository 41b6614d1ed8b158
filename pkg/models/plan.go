package models

// FilePlan is a proposed relocation of one file, computed before any
// mutation occurs. Destination is the prospective path before collision
// avoidance; the final path may differ if HasConflict is set.
type FilePlan struct {
	// Source is the absolute path of the file to relocate
	Source string

	// Destination is the prospective path inside the category folder
	Destination string

	// Category the file was classified into
	Category Category

	// HasConflict indicates the prospective destination already existed
	// at plan time
	HasConflict bool
}

// MoveResult describes one completed relocation
type MoveResult struct {
	// Source is the original file path
	Source string

	// Destination is the final path after collision resolution
	Destination string

	// WasRenamed indicates collision avoidance changed the filename
	WasRenamed bool
}
