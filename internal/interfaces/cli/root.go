// Package cli implements the amr command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openamr/amr/internal/config"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	JSON       bool
}

// CLIContext carries initialised dependencies through the command tree.
type CLIContext struct {
	Config *config.Config
	Logger logging.Logger
	JSON   bool
}

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cliCtx := &CLIContext{}

	root := &cobra.Command{
		Use:   "amr",
		Short: "Microorganism name resolution and susceptibility interpretation",
		Long: `amr resolves free-text microorganism names to stable taxonomic codes
and interprets antimicrobial susceptibility test values.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.LogLevel != "" {
				cfg.Log.Level = opts.LogLevel
			}
			logger, err := logging.NewLogger(logging.Config{
				Level:       cfg.Log.Level,
				Format:      cfg.Log.Format,
				OutputPaths: []string{"stderr"},
			})
			if err != nil {
				return fmt.Errorf("failed to initialise logger: %w", err)
			}
			cliCtx.Config = cfg
			cliCtx.Logger = logger
			cliCtx.JSON = opts.JSON
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "path to config file (default: env AMR_* only)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "override log level (debug|info|warn|error)")
	flags.BoolVar(&opts.JSON, "json", false, "emit machine-readable JSON output")

	root.AddCommand(
		newResolveCommand(cliCtx),
		newLookupCommand(cliCtx),
		newInterpretCommand(cliCtx),
		newMICCommand(cliCtx),
		newMigrateCommand(cliCtx),
	)

	return root
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

// Execute runs the root command, printing errors to stderr.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
