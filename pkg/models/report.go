package models

import (
	"time"
)

// SortReport represents the results of a sorting run
type SortReport struct {
	// Operation details
	OperationID string
	TargetPath  string
	DryRun      bool
	Recursive   bool

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats SortStats

	// Relocations performed (or previewed in dry-run mode)
	Operations []MoveResult

	// Errors encountered
	Errors []SortError

	// Overall status
	Status SortStatus
}

// SortStats accumulates per-run counters. Owned by the engine for the
// duration of one run and returned to the caller at run end.
type SortStats struct {
	TotalFiles   int
	MovedFiles   int
	RenamedFiles int
	SkippedFiles int
	ErrorCount   int

	CategoryCounts map[Category]int
}

// NewSortStats returns an empty stats accumulator
func NewSortStats() SortStats {
	return SortStats{
		CategoryCounts: make(map[Category]int),
	}
}

// SortStatus represents the overall result
type SortStatus string

const (
	// StatusSuccess indicates all files were processed successfully
	StatusSuccess SortStatus = "success"
	// StatusPartial indicates some files failed to move
	StatusPartial SortStatus = "partial"
	// StatusFailed indicates the run aborted before processing files
	StatusFailed SortStatus = "failed"
)

// SortError represents a per-file error during a run
type SortError struct {
	FilePath  string
	Error     string
	Timestamp time.Time
}

// ExitCode returns the appropriate exit code for the sort status
func (s SortStatus) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusPartial:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}
