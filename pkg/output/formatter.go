package output

import (
	"io"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// Update represents a per-file notification during a sorting run
type Update struct {
	Type        string // "planned", "moved", "error"
	Source      string // path relative to the target directory
	Destination string // path relative to the target directory
	Category    models.Category
	Renamed     bool
	Index       int
	Total       int
	Err         error
}

// Formatter defines the interface for output formatting.
// Implementations include human-readable, JSON and progress-bar formatters.
type Formatter interface {
	// Start initializes the formatter for a new sorting run
	Start(writer io.Writer, operation *models.SortOperation, totalFiles int) error

	// Progress reports a per-file event during the run
	Progress(update Update) error

	// Complete finalizes output and displays the summary
	Complete(report *models.SortReport) error

	// Error reports a run-level error
	Error(err error) error

	// Name returns the formatter name
	Name() string
}
