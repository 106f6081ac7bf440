package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/assistkit/internal/configloader"
	"github.com/yaklabco/assistkit/internal/logging"
	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/config"
)

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an assistkit configuration file",
		Long: `Create a new .assistkit.yml configuration file in the current directory.

With --full every registered handler is listed explicitly so it can be
switched off by editing one line.`,
		Example: `  assistkit init
  assistkit init --full --force
  assistkit init --output ci/assistkit.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "list every registered handler in the file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	cfg := config.NewConfig()
	if flags.full {
		enabled := true
		for _, h := range assist.DefaultRegistry.Handlers() {
			cfg.Assists[h.ID()] = config.AssistConfig{Enabled: &enabled}
		}
	}

	if err := configloader.WriteConfig(cmd.Context(), cfg, flags.output, flags.force); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'assistkit assists' to see all available assists")

	return nil
}
