// Package commands implements the evenflow cobra commands.
package commands

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/evenflow/internal/config"
	"github.com/katalvlaran/evenflow/internal/logger"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
)

// NewRootCommand builds the evenflow command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evenflow",
		Short: "Minimum-range spanning trees for pipe networks",
		Long: `evenflow reads pipe networks (junctions joined by pipes of integer
capacity) and prints, per data set, the smallest possible difference between
the largest and smallest capacity of a set of pipes connecting every junction,
or -1 when the junctions cannot all be connected.

Commands:
  solve      Solve data sets from a file or stdin
  generate   Emit random data sets in the input format`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String(configFlag, "", "config file (default .evenflow.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().String(logLevelFlag, config.DefaultLogLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(NewSolveCommand())
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "evenflow %s\n", Version)
		},
	}
}

// loadConfig resolves configuration for cmd, binding config keys to the
// named flags (local or inherited).
func loadConfig(cmd *cobra.Command, bindings map[string]string) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, err
	}

	flags := map[string]*pflag.Flag{"log_level": cmd.Flag(logLevelFlag)}
	for key, name := range bindings {
		flags[key] = cmd.Flag(name)
	}

	return config.Load(configPath, flags)
}

// newLogger builds the stderr logger for cfg.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	return logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
}
