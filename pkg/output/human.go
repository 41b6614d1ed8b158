package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sdejongh/sortnorris/pkg/models"
)

var (
	cyanBold  = color.New(color.FgCyan, color.Bold)
	greenBold = color.New(color.FgGreen, color.Bold)
	bold      = color.New(color.Bold)
	cyan      = color.New(color.FgCyan)
	green     = color.New(color.FgGreen)
	yellow    = color.New(color.FgYellow)
	red       = color.New(color.FgRed)
	blue      = color.New(color.FgBlue)
)

// HumanFormatter formats output in colored, human-readable form
type HumanFormatter struct {
	writer io.Writer
	dryRun bool
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Start prints the run header
func (f *HumanFormatter) Start(writer io.Writer, operation *models.SortOperation, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.dryRun = operation.DryRun

	fmt.Fprintf(writer, "%s %s\n", bold.Sprint("Target directory:"), operation.TargetPath)
	if operation.DryRun {
		fmt.Fprintln(writer, cyanBold.Sprint("[DRY RUN MODE] No files will be moved."))
	}
	if operation.Recursive {
		fmt.Fprintln(writer, yellow.Sprint("[RECURSIVE MODE] Processing subdirectories."))
	}
	fmt.Fprintln(writer)

	return nil
}

// Progress prints one line per file event
func (f *HumanFormatter) Progress(update Update) error {
	if f.writer == nil {
		return nil
	}

	switch update.Type {
	case "planned":
		tag := cyan.Sprint("[DRY RUN]")
		arrow := cyan.Sprint("→")
		if update.Renamed {
			fmt.Fprintf(f.writer, "  %s %s %s %s %s\n",
				tag, update.Source, arrow, update.Destination, yellow.Sprint("(renamed)"))
		} else {
			fmt.Fprintf(f.writer, "  %s %s %s %s %s\n",
				tag, update.Source, arrow, update.Destination,
				blue.Sprintf("[%s]", update.Category))
		}

	case "moved":
		arrow := green.Sprint("→")
		if update.Renamed {
			fmt.Fprintf(f.writer, "  %s %s %s %s\n",
				green.Sprint("✓"), update.Source, arrow,
				yellow.Sprintf("%s (renamed)", update.Destination))
		} else {
			fmt.Fprintf(f.writer, "  %s %s %s %s\n",
				green.Sprint("✓"), update.Source, arrow, update.Destination)
		}

	case "error":
		fmt.Fprintf(f.writer, "  %s %s - %s\n",
			red.Sprint("✗"), update.Source, red.Sprint(update.Err))
	}

	return nil
}

// Complete prints the run summary with the category breakdown
func (f *HumanFormatter) Complete(report *models.SortReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	if report.Stats.TotalFiles == 0 {
		fmt.Fprintln(f.writer, yellow.Sprint("No files found to sort."))
		return nil
	}

	writeSummary(f.writer, report)
	return nil
}

// Error reports a run-level error
func (f *HumanFormatter) Error(err error) error {
	if f.writer != nil {
		fmt.Fprintf(f.writer, "%s %v\n", red.Sprint("Error:"), err)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// writeSummary renders the statistics block shared by the human and
// progress formatters.
func writeSummary(w io.Writer, report *models.SortReport) {
	fmt.Fprintln(w)
	if report.DryRun {
		fmt.Fprintln(w, cyanBold.Sprint("=== Dry Run Summary ==="))
	} else {
		fmt.Fprintln(w, greenBold.Sprint("=== Summary ==="))
	}

	fmt.Fprintf(w, "Total files found: %s\n", yellow.Sprint(report.Stats.TotalFiles))

	if report.DryRun {
		fmt.Fprintf(w, "Files to be moved: %s\n", cyan.Sprint(report.Stats.MovedFiles))
	} else {
		fmt.Fprintf(w, "Files moved: %s\n", green.Sprint(report.Stats.MovedFiles))
		if report.Stats.RenamedFiles > 0 {
			fmt.Fprintf(w, "Files renamed (due to conflicts): %s\n",
				yellow.Sprint(report.Stats.RenamedFiles))
		}
	}

	if report.Stats.SkippedFiles > 0 {
		fmt.Fprintf(w, "Files skipped: %s\n", yellow.Sprint(report.Stats.SkippedFiles))
	}
	if report.Stats.ErrorCount > 0 {
		fmt.Fprintf(w, "Errors: %s\n", red.Sprint(report.Stats.ErrorCount))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, bold.Sprint("Category breakdown:"))
	for _, category := range models.AllCategories() {
		if count := report.Stats.CategoryCounts[category]; count > 0 {
			fmt.Fprintf(w, "  %s: %d\n", category.FolderName(), count)
		}
	}
}
