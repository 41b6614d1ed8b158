package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sdejongh/sortnorris/internal/platform"
	"github.com/sdejongh/sortnorris/pkg/config"
	"github.com/sdejongh/sortnorris/pkg/models"
)

// validateSortTarget validates the target argument and returns it as an
// absolute path. Existence and readability are checked by the engine
// before the run starts.
func validateSortTarget(path string) (string, error) {
	if err := platform.ValidatePath(path); err != nil {
		return "", err
	}

	target, err := platform.NormalizePath(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve target path: %w", err)
	}

	return target, nil
}

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dry-run") {
		cfg.Sort.DryRun = sortFlags.DryRun
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Sort.Recursive = sortFlags.Recursive
	}

	if sortFlags.Output != "" {
		cfg.Output.Format = sortFlags.Output
	}
	if sortFlags.NoProgress {
		cfg.Output.Progress = false
	}

	// Disable progress in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}
}

// createSortOperation creates a sort operation from configuration
func createSortOperation(cfg *config.Config, target string) *models.SortOperation {
	return &models.SortOperation{
		ID:         uuid.New().String(),
		TargetPath: target,
		DryRun:     cfg.Sort.DryRun,
		Recursive:  cfg.Sort.Recursive,
		CreatedAt:  time.Now(),
	}
}
