package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags holds the persistent flags shared by every subcommand
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags registers the persistent flags on the root command.
// Verbose and quiet are not mutually exclusive: verbose raises the log
// level while quiet suppresses formatter output, so both together give a
// silent run with a detailed log file.
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&globalFlags.ConfigFile, "config", "",
		"config file to use instead of $HOME/.config/sortnorris/config.yaml")
	flags.BoolVarP(&globalFlags.Verbose, "verbose", "v", false,
		"enable debug-level logging")
	flags.BoolVarP(&globalFlags.Quiet, "quiet", "q", false,
		"suppress all output except errors")
}

// GetGlobalFlags returns the global flags
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}
