package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/assistkit/internal/logging"
	"github.com/yaklabco/assistkit/pkg/config"
)

// BuildInfo contains version information set at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root cobra command for assistkit.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "assistkit",
		Short: "Token-level code assists for Rust source",
		Long: `assistkit offers small, local source transformations at a cursor or
selection in a Rust file: grouping the digits of number literals,
removing digit separators, and splitting string literals.

List what is available at a position, preview the edits, or apply one.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", string(config.ColorAuto), "colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(
		newListCommand(),
		newResolveCommand(),
		newApplyCommand(),
		newAssistsCommand(),
		newConfigCommand(),
		newInitCommand(),
		newVersionCommand(info),
	)

	helpFormatter := NewHelpFormatter(config.ColorMode(color), os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
