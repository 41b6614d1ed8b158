package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sdejongh/sortnorris/pkg/models"
)

// Move relocates a single file. It tries an atomic rename first and falls
// back to copy-then-delete when rename fails (typically across filesystem
// boundaries, but the cause is not distinguished).
//
// If the copy fails the source is left intact. If the delete after a
// successful copy fails, the error is returned with the file present at
// both locations; no compensating cleanup is attempted.
func Move(source, destination string) error {
	if err := os.Rename(source, destination); err == nil {
		return nil
	}

	if err := copyFile(source, destination); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", source, destination, err)
	}

	if err := os.Remove(source); err != nil {
		return fmt.Errorf("failed to remove source after copy (file exists at both %s and %s): %w",
			source, destination, err)
	}

	return nil
}

// MoveWithDedup relocates source into destDir, renaming with a numeric
// suffix if the original name is taken. The destination directory and any
// missing parents are created first.
func MoveWithDedup(source, destDir string) (*models.MoveResult, error) {
	filename := filepath.Base(source)
	if filename == "." || filename == string(filepath.Separator) {
		return nil, fmt.Errorf("invalid source filename: %s", source)
	}

	if err := EnsureDir(destDir); err != nil {
		return nil, err
	}

	originalDest := filepath.Join(destDir, filename)
	finalDest := UniquePath(destDir, filename)
	wasRenamed := finalDest != originalDest

	if err := Move(source, finalDest); err != nil {
		return nil, err
	}

	return &models.MoveResult{
		Source:      source,
		Destination: finalDest,
		WasRenamed:  wasRenamed,
	}, nil
}

// copyFile copies the full byte content of source to destination and
// carries over the source permission bits.
func copyFile(source, destination string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}

	out, err := os.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to write destination file: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to flush destination file: %w", err)
	}

	return nil
}
