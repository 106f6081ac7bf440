package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/assistkit/internal/logging"
	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/fsutil"
	"github.com/yaklabco/assistkit/pkg/reporter"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

func newListCommand() *cobra.Command {
	flags := &assistFlags{}

	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "List the assists available at a position",
		Long: `List the id and label of every assist that applies at a caret or
selection. Edits are not computed.`,
		Example: `  assistkit list src/main.rs --at 12:17
  assistkit list src/main.rs --offset 240 --end 251 --format json`,
		Args: exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssists(cmd, args[0], flags, assist.ModeList)
		},
	}

	addAssistFlags(cmd, flags)

	return cmd
}

func newResolveCommand() *cobra.Command {
	flags := &assistFlags{}

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Compute the edits of every assist available at a position",
		Long: `Build the edits of every applicable assist and preview them as diffs.
Assists are ordered by the length of their target, narrowest first.`,
		Example: `  assistkit resolve src/main.rs --at 12:17
  assistkit resolve src/main.rs --at 3:5 --to 3:14 --format json`,
		Args: exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssists(cmd, args[0], flags, assist.ModeResolve)
		},
	}

	addAssistFlags(cmd, flags)

	return cmd
}

func runAssists(cmd *cobra.Command, path string, flags *assistFlags, mode assist.Mode) error {
	s, err := openSession(cmd, path, flags)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := s.ctx

	engine := assist.NewEngine(assist.DefaultRegistry)

	var result *assist.Result
	if mode == assist.ModeResolve {
		result, err = engine.Resolve(ctx, s.file, s.selection, s.cfg)
	} else {
		result, err = engine.List(ctx, s.file, s.selection, s.cfg)
	}
	if err != nil {
		return fmt.Errorf("%s assists: %w", mode, err)
	}

	rep, err := newReporter(cmd, s.cfg, flags)
	if err != nil {
		return err
	}

	count, err := rep.Report(ctx, &reporter.Report{
		Snapshot:  s.file,
		Selection: s.selection,
		Mode:      mode,
		Result:    result,
	})
	if err != nil {
		return fmt.Errorf("report assists: %w", err)
	}

	if count == 0 {
		return ErrNoAssists
	}
	return nil
}

type applyFlags struct {
	assistFlags

	assistID string
	write    bool
	print    bool
}

func newApplyCommand() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply one assist at a position",
		Long: `Resolve the assist with the given ID at a caret or selection and
apply its edits. By default the change is previewed as a diff; --write
updates the file in place and --print writes the edited source to stdout.

The file is only written if it has not changed since it was read.`,
		Example: `  assistkit apply src/main.rs --at 12:17 --assist separate_decimal_thousands
  assistkit apply src/main.rs --at 12:17 --assist remove_digit_separators --write`,
		Args: exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], flags)
		},
	}

	addAssistFlags(cmd, &flags.assistFlags)
	cmd.Flags().StringVar(&flags.assistID, "assist", "", "ID of the assist to apply")
	cmd.Flags().BoolVar(&flags.write, "write", false, "write the result back to FILE")
	cmd.Flags().BoolVar(&flags.print, "print", false, "print the edited source instead of a diff")

	return cmd
}

func runApply(cmd *cobra.Command, path string, flags *applyFlags) error {
	if flags.assistID == "" {
		return fmt.Errorf("%w: --assist is required", ErrUsage)
	}
	if flags.write && flags.print {
		return fmt.Errorf("%w: --write and --print are mutually exclusive", ErrUsage)
	}

	s, err := openSession(cmd, path, &flags.assistFlags)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	ctx := s.ctx
	logger := logging.FromContext(ctx)

	result, err := assist.NewEngine(assist.DefaultRegistry).Resolve(ctx, s.file, s.selection, s.cfg)
	if err != nil {
		return fmt.Errorf("resolve assists: %w", err)
	}

	chosen, ok := result.Find(flags.assistID)
	if !ok || chosen.Edit == nil {
		offered := "none"
		if ids := result.IDs(); len(ids) > 0 {
			offered = strings.Join(ids, ", ")
		}
		return fmt.Errorf("%w: %s (offered: %s)", ErrAssistNotOffered, flags.assistID, offered)
	}

	after, err := chosen.Edit.Apply(s.file.Content)
	if err != nil {
		return fmt.Errorf("apply %s: %w", chosen.ID, err)
	}

	switch {
	case flags.write:
		if err := fsutil.WriteBack(ctx, s.info, after); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		line, col := syntax.NewFileSnapshot(path, after).LineAt(chosen.Edit.CursorOr(s.selection.End))
		logger.Info("applied assist",
			logging.FieldAssist, chosen.ID,
			logging.FieldCursor, fmt.Sprintf("%d:%d", line, col),
		)
		return nil

	case flags.print:
		if _, err := cmd.OutOrStdout().Write(after); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	rep, err := newReporter(cmd, s.cfg, &flags.assistFlags)
	if err != nil {
		return err
	}
	_, err = rep.Report(ctx, &reporter.Report{
		Snapshot:  s.file,
		Selection: s.selection,
		Mode:      assist.ModeResolve,
		Result:    &assist.Result{Assists: []assist.Assist{*chosen}},
	})
	if err != nil {
		return fmt.Errorf("report assist: %w", err)
	}
	return nil
}
