package models

import (
	"time"
)

// SortOperation represents one sorting run configuration
type SortOperation struct {
	ID         string
	TargetPath string
	DryRun     bool
	Recursive  bool
	CreatedAt  time.Time
}

// Validate checks if the operation configuration is valid
func (op *SortOperation) Validate() error {
	if op.TargetPath == "" {
		return &ValidationError{Field: "TargetPath", Message: "target path is required"}
	}
	return nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
