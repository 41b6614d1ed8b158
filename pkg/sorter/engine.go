package sorter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sdejongh/sortnorris/pkg/catalog"
	"github.com/sdejongh/sortnorris/pkg/fileops"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/models"
	"github.com/sdejongh/sortnorris/pkg/output"
)

// Engine orchestrates one sorting run. A run is either a dry run (preview
// only, no mutation) or an execute run; the mode is fixed for the run's
// lifetime.
type Engine struct {
	catalog   *catalog.Catalog
	formatter output.Formatter
	logger    logging.Logger
	operation *models.SortOperation
	writer    io.Writer
}

// NewEngine creates a new sorting engine
func NewEngine(
	cat *catalog.Catalog,
	formatter output.Formatter,
	logger logging.Logger,
	operation *models.SortOperation,
) *Engine {
	return &Engine{
		catalog:   cat,
		formatter: formatter,
		logger:    logger,
		operation: operation,
		writer:    os.Stdout,
	}
}

// SetWriter redirects formatter output, mainly for tests
func (e *Engine) SetWriter(w io.Writer) {
	e.writer = w
}

// Run executes the sorting operation and returns the report. Run-level
// precondition failures (missing, non-directory or unreadable target)
// return an error before any plan is built or file is touched; per-file
// failures are accumulated in the report and never abort the batch.
func (e *Engine) Run(ctx context.Context) (*models.SortReport, error) {
	target := e.operation.TargetPath

	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("target directory does not exist: %s", target)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access target directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target path is not a directory: %s", target)
	}
	if _, err := os.ReadDir(target); err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", target, err)
	}

	report := &models.SortReport{
		OperationID: e.operation.ID,
		TargetPath:  target,
		DryRun:      e.operation.DryRun,
		Recursive:   e.operation.Recursive,
		StartTime:   time.Now(),
		Stats:       models.NewSortStats(),
		Status:      models.StatusSuccess,
	}

	e.logger.Info(ctx, "Starting sort run", logging.Fields{
		"operation_id": e.operation.ID,
		"target":       target,
		"dry_run":      e.operation.DryRun,
		"recursive":    e.operation.Recursive,
	})

	walker := NewWalker(target)
	files, err := walker.Collect(e.operation.Recursive)
	if err != nil {
		return nil, err
	}

	e.logger.Info(ctx, "Collected files", logging.Fields{"count": len(files)})

	planner := NewPlanner(target, e.catalog)
	plans := planner.BuildPlans(files)
	report.Stats.TotalFiles = len(plans)

	e.formatter.Start(e.writer, e.operation, len(plans))

	if len(plans) > 0 {
		if e.operation.DryRun {
			e.simulate(ctx, plans, report)
		} else {
			if err := e.execute(ctx, plans, report); err != nil {
				return nil, err
			}
		}
	}

	report.EndTime = time.Now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	if report.Stats.ErrorCount > 0 {
		report.Status = models.StatusPartial
	}

	e.formatter.Complete(report)

	e.logger.Info(ctx, "Sort run finished", logging.Fields{
		"operation_id": e.operation.ID,
		"status":       string(report.Status),
		"moved":        report.Stats.MovedFiles,
		"renamed":      report.Stats.RenamedFiles,
		"errors":       report.Stats.ErrorCount,
	})

	return report, nil
}

// simulate previews every plan without touching the filesystem. The final
// destination is recomputed against the live filesystem so the preview
// matches what an immediately-following execute run would do.
func (e *Engine) simulate(ctx context.Context, plans []models.FilePlan, report *models.SortReport) {
	total := len(plans)

	for i, plan := range plans {
		report.Stats.CategoryCounts[plan.Category]++

		finalDest := plan.Destination
		renamed := false
		if plan.HasConflict {
			destDir := filepath.Dir(plan.Destination)
			finalDest = fileops.UniquePath(destDir, filepath.Base(plan.Source))
			renamed = finalDest != plan.Destination
		}

		report.Stats.MovedFiles++
		if renamed {
			report.Stats.RenamedFiles++
		}
		report.Operations = append(report.Operations, models.MoveResult{
			Source:      plan.Source,
			Destination: finalDest,
			WasRenamed:  renamed,
		})

		e.formatter.Progress(output.Update{
			Type:        "planned",
			Source:      e.relative(plan.Source),
			Destination: e.relative(finalDest),
			Category:    plan.Category,
			Renamed:     renamed,
			Index:       i + 1,
			Total:       total,
		})

		e.logger.Debug(ctx, "Planned move", logging.Fields{
			"source":      plan.Source,
			"destination": finalDest,
			"category":    string(plan.Category),
			"renamed":     renamed,
		})
	}
}

// execute applies every plan. Receiving category folders are pre-created;
// a single file's failure is counted, logged and skipped so the batch
// always attempts every planned file exactly once.
func (e *Engine) execute(ctx context.Context, plans []models.FilePlan, report *models.SortReport) error {
	receiving := make(map[models.Category]bool)
	for _, plan := range plans {
		receiving[plan.Category] = true
	}
	for _, category := range models.AllCategories() {
		if !receiving[category] {
			continue
		}
		dir := filepath.Join(e.operation.TargetPath, category.FolderName())
		if err := fileops.EnsureDir(dir); err != nil {
			return err
		}
	}

	total := len(plans)

	for i, plan := range plans {
		destDir := filepath.Dir(plan.Destination)

		result, err := fileops.MoveWithDedup(plan.Source, destDir)
		if err != nil {
			report.Stats.ErrorCount++
			report.Errors = append(report.Errors, models.SortError{
				FilePath:  plan.Source,
				Error:     err.Error(),
				Timestamp: time.Now(),
			})

			e.logger.Error(ctx, "Failed to move file", err, logging.Fields{
				"source":   plan.Source,
				"category": string(plan.Category),
			})
			e.formatter.Progress(output.Update{
				Type:   "error",
				Source: e.relative(plan.Source),
				Err:    err,
				Index:  i + 1,
				Total:  total,
			})
			continue
		}

		report.Stats.CategoryCounts[plan.Category]++
		report.Stats.MovedFiles++
		if result.WasRenamed {
			report.Stats.RenamedFiles++
			e.logger.Info(ctx, "File renamed to avoid duplicate", logging.Fields{
				"source":      plan.Source,
				"destination": result.Destination,
			})
		}
		report.Operations = append(report.Operations, *result)

		e.formatter.Progress(output.Update{
			Type:        "moved",
			Source:      e.relative(plan.Source),
			Destination: e.relative(result.Destination),
			Category:    plan.Category,
			Renamed:     result.WasRenamed,
			Index:       i + 1,
			Total:       total,
		})
	}

	return nil
}

// relative shortens a path for display, falling back to the absolute path
func (e *Engine) relative(path string) string {
	rel, err := filepath.Rel(e.operation.TargetPath, path)
	if err != nil {
		return path
	}
	return rel
}
