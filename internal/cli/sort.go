package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sdejongh/sortnorris/pkg/catalog"
	"github.com/sdejongh/sortnorris/pkg/config"
	"github.com/sdejongh/sortnorris/pkg/logging"
	"github.com/sdejongh/sortnorris/pkg/output"
	"github.com/sdejongh/sortnorris/pkg/sorter"
)

// SortFlags holds sort command flags
type SortFlags struct {
	DryRun     bool
	Recursive  bool
	Output     string
	NoProgress bool
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var sortFlags SortFlags

// NewSortCommand creates the sort command
func NewSortCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort TARGET_DIR",
		Short: "Sort files into category folders by extension",
		Long: `Sort the files of a directory into category folders (Images, Videos,
Documents, Music, Archives, Code, Others) based on their extension.

Files already inside a category folder are left alone, so repeated runs are
safe. Name collisions in a category folder are resolved with a numeric
suffix instead of overwriting. Use --dry-run to preview the result first.`,
		Args: cobra.ExactArgs(1),
		RunE: runSort,
	}

	cmd.Flags().BoolVarP(&sortFlags.DryRun, "dry-run", "d", false, "preview the plan without moving any file")
	cmd.Flags().BoolVarP(&sortFlags.Recursive, "recursive", "r", false, "process subdirectories recursively")
	cmd.Flags().StringVarP(&sortFlags.Output, "output", "o", "human", "output format: human, json")
	cmd.Flags().BoolVar(&sortFlags.NoProgress, "no-progress", false, "disable the progress bar")

	// Logging flags
	cmd.Flags().StringVar(&sortFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&sortFlags.LogFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().StringVar(&sortFlags.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}

func runSort(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate and normalize the target path
	target, err := validateSortTarget(args[0])
	if err != nil {
		return err
	}

	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	applyFlagsToConfig(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Create sort operation
	operation := createSortOperation(cfg, target)

	// Create output formatter
	var formatter output.Formatter
	switch cfg.Output.Format {
	case "json":
		formatter = output.NewJSONFormatter()
	default:
		if useProgressBar(cfg.Output.Progress, operation.DryRun) {
			formatter = output.NewProgressFormatter()
		} else {
			formatter = output.NewHumanFormatter()
		}
	}

	// Create logger
	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	if cfg.Output.Format == "human" && !cfg.Output.Quiet {
		printBanner()
		if !operation.DryRun {
			printWarning()
		}
	}

	// Create and run the engine
	engine := sorter.NewEngine(catalog.New(), formatter, logger, operation)
	if cfg.Output.Quiet {
		engine.SetWriter(io.Discard)
	}

	report, err := engine.Run(ctx)
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	// Exit with appropriate code
	os.Exit(report.Status.ExitCode())
	return nil
}

// useProgressBar decides between the progress bar and per-file lines.
// Dry runs always show per-file lines since the preview is the point.
func useProgressBar(progressEnabled, dryRun bool) bool {
	if dryRun || !progressEnabled || sortFlags.NoProgress {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func printBanner() {
	banner := `
  ╔═══════════════════════════════════════════╗
  ║                                           ║
  ║   sortnorris                              ║
  ║   File organizer by extension             ║
  ║                                           ║
  ╚═══════════════════════════════════════════╝
`
	fmt.Println(color.CyanString(banner))
}

func printWarning() {
	fmt.Println(color.New(color.FgYellow, color.Bold).
		Sprint("WARNING: This will move files. Use --dry-run first to preview."))
	fmt.Println()
}

// createLogger creates a logger based on configuration and flags
func createLogger(cfg *config.Config) (logging.Logger, error) {
	logFile := sortFlags.LogFile
	logFormat := sortFlags.LogFormat
	logLevel := sortFlags.LogLevel

	if logFile == "" && cfg.Logging.Enabled {
		logFile = cfg.Logging.File
		logFormat = cfg.Logging.Format
		logLevel = cfg.Logging.Level
	}

	if logFile == "" {
		return logging.NewNullLogger(), nil
	}

	var format logging.Format
	switch logFormat {
	case "json":
		format = logging.FormatJSON
	default:
		format = logging.FormatText
	}

	level := logging.ParseLevel(logLevel)
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       logFile,
		Format:     format,
		Level:      level,
		MaxSize:    10 * 1024 * 1024, // 10 MB
		MaxBackups: 5,
	})
}
