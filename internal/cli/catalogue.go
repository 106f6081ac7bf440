package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/assistkit/internal/configloader"
	"github.com/yaklabco/assistkit/internal/ui/pretty"
	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/config"
	"github.com/yaklabco/assistkit/pkg/reporter"
)

func newAssistsCommand() *cobra.Command {
	var format string
	var compact bool

	cmd := &cobra.Command{
		Use:   "assists",
		Short: "List registered assist handlers",
		Long: `List every registered handler with the assist IDs it offers and
whether it is enabled under the current configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCfg := &config.Config{}
			if cmd.Flags().Changed("format") {
				cliCfg.Format = config.OutputFormat(format)
			}

			loaded, err := loadConfig(cmd, cliCfg)
			if err != nil {
				return err
			}

			rep, err := newReporter(cmd, loaded.Config, &assistFlags{compact: compact})
			if err != nil {
				return err
			}

			entries := reporter.NewCatalogue(assist.DefaultRegistry, loaded.Config)
			if err := rep.Catalogue(cmd.Context(), entries); err != nil {
				return fmt.Errorf("report catalogue: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, html")
	cmd.Flags().BoolVar(&compact, "compact", false, "minify JSON output")

	return cmd
}

func newConfigCommand() *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration obtained by merging the system, user, project
and explicit config files with ASSISTKIT_* environment variables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if showEnv {
				color, _ := cmd.Flags().GetString("color")
				styles := pretty.NewStyles(pretty.IsColorEnabled(config.ColorMode(color), out))
				table := pretty.NewTableFormatter(styles, pretty.TermWidth(out))

				vars := configloader.ListEnvVars()
				rows := make([][]string, 0, len(vars))
				for _, v := range vars {
					rows = append(rows, []string{v[0], v[1]})
				}
				_, err := fmt.Fprint(out, table.Format([]string{"VARIABLE", "DESCRIPTION"}, rows))
				return err
			}

			loaded, err := loadConfig(cmd, &config.Config{})
			if err != nil {
				return err
			}

			header := "# effective configuration (defaults only)"
			for i, path := range loaded.LoadedFrom {
				if i == 0 {
					header = "# effective configuration, loaded from:"
				}
				header += "\n#   " + path
			}

			content, err := loaded.Config.ToYAMLWithHeader(header)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, err = out.Write(content)
			return err
		},
	}

	cmd.Flags().BoolVar(&showEnv, "env", false, "list the supported environment variables instead")

	return cmd
}
