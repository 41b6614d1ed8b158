package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// JSONFormatter formats output as JSON for automation and scripting
type JSONFormatter struct {
	writer io.Writer
}

// JSONReportData represents the final report document
type JSONReportData struct {
	OperationID string              `json:"operation_id"`
	Status      string              `json:"status"`
	TargetPath  string              `json:"target_path"`
	DryRun      bool                `json:"dry_run"`
	Recursive   bool                `json:"recursive"`
	Duration    string              `json:"duration"`
	DurationMs  int64               `json:"duration_ms"`
	Stats       JSONStatsData       `json:"stats"`
	Operations  []JSONOperationData `json:"operations,omitempty"`
	Errors      []JSONErrorData     `json:"errors,omitempty"`
}

// JSONStatsData represents statistics in JSON format
type JSONStatsData struct {
	TotalFiles   int            `json:"total_files"`
	MovedFiles   int            `json:"moved_files"`
	RenamedFiles int            `json:"renamed_files"`
	SkippedFiles int            `json:"skipped_files"`
	ErrorCount   int            `json:"error_count"`
	Categories   map[string]int `json:"categories"`
}

// JSONOperationData represents one relocation
type JSONOperationData struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Renamed     bool   `json:"renamed"`
}

// JSONErrorData represents an error entry
type JSONErrorData struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, operation *models.SortOperation, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Progress is a no-op: per-file events are not streamed so the output
// stays a single parseable document.
func (f *JSONFormatter) Progress(update Update) error {
	return nil
}

// Complete writes the final report as an indented JSON document
func (f *JSONFormatter) Complete(report *models.SortReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	categories := make(map[string]int)
	for category, count := range report.Stats.CategoryCounts {
		categories[category.FolderName()] = count
	}

	var operations []JSONOperationData
	for _, op := range report.Operations {
		operations = append(operations, JSONOperationData{
			Source:      op.Source,
			Destination: op.Destination,
			Renamed:     op.WasRenamed,
		})
	}

	var errors []JSONErrorData
	for _, e := range report.Errors {
		errors = append(errors, JSONErrorData{
			Path:  e.FilePath,
			Error: e.Error,
		})
	}

	doc := JSONReportData{
		OperationID: report.OperationID,
		Status:      string(report.Status),
		TargetPath:  report.TargetPath,
		DryRun:      report.DryRun,
		Recursive:   report.Recursive,
		Duration:    report.Duration.Round(time.Millisecond).String(),
		DurationMs:  report.Duration.Milliseconds(),
		Stats: JSONStatsData{
			TotalFiles:   report.Stats.TotalFiles,
			MovedFiles:   report.Stats.MovedFiles,
			RenamedFiles: report.Stats.RenamedFiles,
			SkippedFiles: report.Stats.SkippedFiles,
			ErrorCount:   report.Stats.ErrorCount,
			Categories:   categories,
		},
		Operations: operations,
		Errors:     errors,
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Error reports a run-level error as a JSON object
func (f *JSONFormatter) Error(err error) error {
	if f.writer == nil {
		return nil
	}
	return json.NewEncoder(f.writer).Encode(map[string]string{
		"error": err.Error(),
	})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
