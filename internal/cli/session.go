package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/assistkit/internal/configloader"
	"github.com/yaklabco/assistkit/internal/logging"
	"github.com/yaklabco/assistkit/pkg/config"
	"github.com/yaklabco/assistkit/pkg/fsutil"
	"github.com/yaklabco/assistkit/pkg/langdetect"
	"github.com/yaklabco/assistkit/pkg/parser/treesitter"
	"github.com/yaklabco/assistkit/pkg/reporter"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

// assistFlags are shared by the commands that run handlers on a file.
type assistFlags struct {
	selection selectionFlags
	format    string
	lang      string
	enable    []string
	disable   []string
	jobs      int
	noContext bool
	noDiff    bool
	compact   bool
}

func addAssistFlags(cmd *cobra.Command, flags *assistFlags) {
	addSelectionFlags(cmd, &flags.selection)
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, html")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "source language (detected from the file when empty)")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "assist or handler IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "assist or handler IDs to disable")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of handlers evaluated in parallel (0 = auto)")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide the source line in text output")
	cmd.Flags().BoolVar(&flags.noDiff, "no-diff", false, "hide diff previews of resolved assists")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON output")
}

// cliConfig returns the configuration layer set by explicit flags.
func (f *assistFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		EnableAssists:  f.enable,
		DisableAssists: f.disable,
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	return cfg
}

// parsers maps detected languages to their parser constructors.
//
//nolint:gochecknoglobals // Read-only lookup table.
var parsers = map[string]func() *treesitter.Parser{
	langdetect.Rust: treesitter.New,
}

// session is a parsed file and a selection in it, with the effective
// configuration.
type session struct {
	ctx       context.Context
	cfg       *config.Config
	file      *syntax.FileSnapshot
	info      *fsutil.FileInfo
	selection syntax.TextRange
}

func openSession(cmd *cobra.Command, path string, flags *assistFlags) (*session, error) {
	ctx := logging.With(cmd.Context(), logging.FieldPath, path)
	logger := logging.FromContext(ctx)

	loaded, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return nil, err
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	lang, err := langdetect.Resolve(path, content, flags.lang)
	if err != nil {
		return nil, err
	}
	newParser, ok := parsers[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", langdetect.ErrUnsupportedLanguage, lang)
	}

	file, err := newParser().Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}

	selection, err := flags.selection.resolve(cmd, file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	logger.Debug("file parsed",
		logging.FieldLanguage, lang,
		logging.FieldSelection, selection.String(),
	)

	return &session{
		ctx:       ctx,
		cfg:       loaded.Config,
		file:      file,
		info:      info,
		selection: selection,
	}, nil
}

func (s *session) Close() error {
	return s.file.Close()
}

// loadConfig resolves the effective configuration for a command. The
// --color persistent flag is folded into the CLI layer when given.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*configloader.LoadResult, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(color)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, result.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, result.Config.Jobs,
		logging.FieldFormat, result.Config.Format,
	)

	return result, nil
}

func newReporter(cmd *cobra.Command, cfg *config.Config, flags *assistFlags) (reporter.Reporter, error) {
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	opts := reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       cfg.Color,
		ShowContext: true,
		ShowDiff:    true,
	}
	if flags != nil {
		opts.ShowContext = !flags.noContext
		opts.ShowDiff = !flags.noDiff
		opts.Compact = flags.compact
	}

	rep, err := reporter.New(opts)
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}
	return rep, nil
}

// exactlyOneFile is a cobra.PositionalArgs that reports usage errors
// with ErrUsage so they map to ExitInvalidUsage.
func exactlyOneFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: expected exactly one FILE argument, got %d", ErrUsage, len(args))
	}
	return nil
}
