package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/sdejongh/sortnorris/pkg/models"
)

// ProgressFormatter shows a progress bar while files are moved and prints
// the summary at the end. Per-file lines are suppressed so the bar stays
// readable; failures are still listed in the final summary.
type ProgressFormatter struct {
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewProgressFormatter creates a progress bar formatter
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{}
}

// Start initializes the progress bar
func (f *ProgressFormatter) Start(writer io.Writer, operation *models.SortOperation, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer

	if totalFiles > 0 {
		f.bar = pb.New(totalFiles).SetWriter(writer)
		f.bar.Start()
	}

	return nil
}

// Progress advances the bar for each processed file
func (f *ProgressFormatter) Progress(update Update) error {
	if f.bar == nil {
		return nil
	}

	switch update.Type {
	case "planned", "moved", "error":
		f.bar.Increment()
	}

	return nil
}

// Complete finishes the bar and prints the summary
func (f *ProgressFormatter) Complete(report *models.SortReport) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	if f.writer == nil {
		f.writer = io.Discard
	}

	if report.Stats.TotalFiles == 0 {
		io.WriteString(f.writer, yellow.Sprint("No files found to sort.")+"\n")
		return nil
	}

	writeSummary(f.writer, report)

	if len(report.Errors) > 0 {
		io.WriteString(f.writer, "\n"+red.Sprint("Failures:")+"\n")
		for _, e := range report.Errors {
			io.WriteString(f.writer, "  "+e.FilePath+": "+e.Error+"\n")
		}
	}

	return nil
}

// Error reports a run-level error
func (f *ProgressFormatter) Error(err error) error {
	if f.bar != nil {
		f.bar.Finish()
		f.bar = nil
	}
	if f.writer != nil {
		io.WriteString(f.writer, red.Sprint("Error: ")+err.Error()+"\n")
	}
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
