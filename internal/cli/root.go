// Package cli provides the command-line interface for fgbscope.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/geostack-labs/fgbscope/internal/cli/commands"
	"github.com/geostack-labs/fgbscope/internal/cli/config"
)

var (
	cfgFile  string
	dumpFlag bool
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fgbscope <file|url>",
		Short: "fgbscope - FlatGeobuf header inspector",
		Long: `fgbscope decodes the header of a FlatGeobuf file — metadata, column
schema, and spatial extent — and browses it in an interactive terminal
UI. Only the header is read; feature data is never downloaded or
parsed, so remote objects of any size are cheap to inspect.`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			if cfg.Verbose && cfg.FileUsed != "" {
				fmt.Fprintf(os.Stderr, "Using config file: %s\n", cfg.FileUsed)
			}

			cmd.SetContext(commands.WithSession(cmd.Context(), cfg, logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunInspect(cmd, args[0], dumpFlag)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
FlatGeobuf header inspector
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fgbscope.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("watch", true, "Reload the header when a local file changes")
	rootCmd.PersistentFlags().Int("timeout", config.DefaultTimeoutSeconds, "HTTP timeout in seconds for remote sources")
	rootCmd.PersistentFlags().String("user-agent", config.DefaultUserAgent, "User-Agent header for remote sources")
	rootCmd.PersistentFlags().Int("map-rows", 0, "Cap the map grid height (0 = fit window)")
	rootCmd.PersistentFlags().Int("map-cols", 0, "Cap the map grid width (0 = fit window)")

	rootCmd.Flags().BoolVar(&dumpFlag, "dump", false, "Print the header to stdout instead of the TUI")

	rootCmd.AddCommand(commands.NewVersionCommand(Version, BuildDate, GitCommit))
	rootCmd.AddCommand(commands.NewDumpCommand())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
