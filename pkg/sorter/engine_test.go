package sorter

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sdejongh/sortnorris/pkg/catalog"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/models"
	"github.com/sdejongh/sortnorris/pkg/output"
)

func newTestEngine(target string, dryRun, recursive bool) *Engine {
	operation := &models.SortOperation{
		ID:         "test-run",
		TargetPath: target,
		DryRun:     dryRun,
		Recursive:  recursive,
		CreatedAt:  time.Now(),
	}

	engine := NewEngine(catalog.New(), output.NewHumanFormatter(), logging.NewNullLogger(), operation)
	engine.SetWriter(&bytes.Buffer{})
	return engine
}

// snapshot records every path under root with its file content
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()

	entries := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			entries[rel] = ""
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		entries[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("failed to snapshot %s: %v", root, err)
	}
	return entries
}

// TestRunPreconditions tests run-level fatal aborts
func TestRunPreconditions(t *testing.T) {
	t.Run("MissingTarget", func(t *testing.T) {
		engine := newTestEngine("/nonexistent/path/that/does/not/exist", false, false)
		if _, err := engine.Run(context.Background()); err == nil {
			t.Error("Run() should fail for a missing target")
		}
	})

	t.Run("TargetIsFile", func(t *testing.T) {
		tempFile, err := os.CreateTemp("", "sortnorris-file-*")
		if err != nil {
			t.Fatalf("failed to create temp file: %v", err)
		}
		tempFile.Close()
		defer os.Remove(tempFile.Name())

		engine := newTestEngine(tempFile.Name(), false, false)
		if _, err := engine.Run(context.Background()); err == nil {
			t.Error("Run() should fail when the target is not a directory")
		}
	})
}

// TestRunEmptyDirectory tests that an empty target yields zero statistics
// and creates no folders
func TestRunEmptyDirectory(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortnorris-engine-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	engine := newTestEngine(tempDir, false, false)
	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Stats.TotalFiles != 0 || report.Stats.MovedFiles != 0 ||
		report.Stats.RenamedFiles != 0 || report.Stats.ErrorCount != 0 {
		t.Errorf("empty directory stats = %+v, want all zero", report.Stats)
	}
	if report.Status != models.StatusSuccess {
		t.Errorf("Status = %v, want %v", report.Status, models.StatusSuccess)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("failed to read target: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty run created entries: %v", entries)
	}
}

// TestRunDryRunDoesNotMutate tests that a simulate run leaves the tree
// byte-identical, even with conflicts present
func TestRunDryRunDoesNotMutate(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortnorris-engine-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	writeFile(t, filepath.Join(tempDir, "photo.jpg"))
	writeFile(t, filepath.Join(tempDir, "doc.pdf"))
	writeFile(t, filepath.Join(tempDir, "Images", "photo.jpg"))

	before := snapshot(t, tempDir)

	engine := newTestEngine(tempDir, true, false)
	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	after := snapshot(t, tempDir)
	if len(before) != len(after) {
		t.Fatalf("dry run changed entry count: before=%d after=%d", len(before), len(after))
	}
	for path, content := range before {
		if after[path] != content {
			t.Errorf("dry run modified %s", path)
		}
	}

	// The forecast still counts the would-be moves and renames
	if report.Stats.MovedFiles != 2 {
		t.Errorf("MovedFiles = %d, want 2", report.Stats.MovedFiles)
	}
	if report.Stats.RenamedFiles != 1 {
		t.Errorf("RenamedFiles = %d, want 1", report.Stats.RenamedFiles)
	}
}

// TestRunExecuteScenario tests the mixed scenario: classified moves, a
// fallback-category file and a collision rename
func TestRunExecuteScenario(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortnorris-engine-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	writeFile(t, filepath.Join(tempDir, "photo.jpg"))
	writeFile(t, filepath.Join(tempDir, "doc.pdf"))
	writeFile(t, filepath.Join(tempDir, "note"))
	writeFile(t, filepath.Join(tempDir, "Images", "photo.jpg"))

	engine := newTestEngine(tempDir, false, false)
	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Stats.MovedFiles != 3 {
		t.Errorf("MovedFiles = %d, want 3", report.Stats.MovedFiles)
	}
	if report.Stats.RenamedFiles != 1 {
		t.Errorf("RenamedFiles = %d, want 1", report.Stats.RenamedFiles)
	}
	if report.Stats.ErrorCount != 0 {
		t.Errorf("ErrorCount = %d, want 0", report.Stats.ErrorCount)
	}
	if report.Status != models.StatusSuccess {
		t.Errorf("Status = %v, want %v", report.Status, models.StatusSuccess)
	}

	expected := []string{
		filepath.Join(tempDir, "Documents", "doc.pdf"),
		filepath.Join(tempDir, "Others", "note"),
		filepath.Join(tempDir, "Images", "photo.jpg"),
		filepath.Join(tempDir, "Images", "photo_1.jpg"),
	}
	for _, path := range expected {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected file missing after run: %s", path)
		}
	}

	if report.Stats.CategoryCounts[models.CategoryImages] != 1 {
		t.Errorf("Images count = %d, want 1", report.Stats.CategoryCounts[models.CategoryImages])
	}
	if report.Stats.CategoryCounts[models.CategoryDocuments] != 1 {
		t.Errorf("Documents count = %d, want 1", report.Stats.CategoryCounts[models.CategoryDocuments])
	}
	if report.Stats.CategoryCounts[models.CategoryOthers] != 1 {
		t.Errorf("Others count = %d, want 1", report.Stats.CategoryCounts[models.CategoryOthers])
	}
}

// TestRunIdempotent tests that a second execute run moves nothing
func TestRunIdempotent(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortnorris-engine-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	writeFile(t, filepath.Join(tempDir, "photo.jpg"))
	writeFile(t, filepath.Join(tempDir, "song.mp3"))

	first := newTestEngine(tempDir, false, false)
	firstReport, err := first.Run(context.Background())
	if err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if firstReport.Stats.MovedFiles != 2 {
		t.Fatalf("first run MovedFiles = %d, want 2", firstReport.Stats.MovedFiles)
	}

	second := newTestEngine(tempDir, false, false)
	secondReport, err := second.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if secondReport.Stats.TotalFiles != 0 || secondReport.Stats.MovedFiles != 0 {
		t.Errorf("second run stats = %+v, want zero moves", secondReport.Stats)
	}
}

// TestRunRecursiveExecute tests that nested files are relocated to the
// target root's category folders
func TestRunRecursiveExecute(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "sortnorris-engine-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	writeFile(t, filepath.Join(tempDir, "top.pdf"))
	writeFile(t, filepath.Join(tempDir, "nested", "deep", "clip.mp4"))

	engine := newTestEngine(tempDir, false, true)
	report, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if report.Stats.MovedFiles != 2 {
		t.Errorf("MovedFiles = %d, want 2", report.Stats.MovedFiles)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "Videos", "clip.mp4")); err != nil {
		t.Errorf("nested file was not moved into Videos: %v", err)
	}
}
