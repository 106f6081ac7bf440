package reporter

import (
	"bufio"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/assistkit/internal/ui/pretty"
	"github.com/yaklabco/assistkit/pkg/assist"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		width:  pretty.TermWidth(opts.Writer),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, report *Report) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if report == nil || report.Result == nil || report.Snapshot == nil {
		fmt.Fprint(r.bw, r.styles.FormatSummary(0, 0))
		return 0, nil
	}

	file := report.Snapshot
	sel := report.Selection
	start := positionOf(file, sel.Start)
	end := positionOf(file, sel.End)

	fmt.Fprintln(r.bw, r.styles.FormatLocation(file.Path, start.Line, start.Column, end.Line, end.Column))

	if r.opts.ShowContext {
		endCol := end.Column
		if end.Line != start.Line {
			endCol = 0
		}
		fmt.Fprint(r.bw, r.styles.FormatSourceContext(string(file.LineContent(start.Line)), start.Column, endCol))
	}

	for i := range report.Result.Assists {
		if err := ctx.Err(); err != nil {
			return i, fmt.Errorf("report: %w", err)
		}

		a := &report.Result.Assists[i]
		fmt.Fprint(r.bw, r.styles.FormatAssist(i+1, a.ID, a.Label, a.Group))

		if report.Mode == assist.ModeResolve && r.opts.ShowDiff {
			if err := r.writePreview(report, a); err != nil {
				return i, err
			}
		}
	}

	r.writeHandlerErrors(report.Result)
	fmt.Fprint(r.bw, r.styles.FormatSummary(len(report.Result.Assists), len(report.Result.HandlerErrors)))

	return len(report.Result.Assists), nil
}

func (r *TextReporter) writePreview(report *Report, a *assist.Assist) error {
	p, err := previewAssist(report.Snapshot, report.Selection, a)
	if err != nil || p == nil {
		return err
	}

	for line := range strings.SplitSeq(strings.TrimRight(p.Diff.Text, "\n"), "\n") {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		fmt.Fprintln(r.bw, "     "+r.styles.FormatDiffLine(line))
	}
	return nil
}

func (r *TextReporter) writeHandlerErrors(result *assist.Result) {
	ids := make([]string, 0, len(result.HandlerErrors))
	for id := range result.HandlerErrors {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		fmt.Fprintf(r.bw, "  %s %s\n",
			r.styles.Failure.Render(id+":"),
			r.styles.Dim.Render(result.HandlerErrors[id].Error()))
	}
}

// Catalogue implements Reporter.
func (r *TextReporter) Catalogue(_ context.Context, entries []CatalogueEntry) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		enabled := "yes"
		if !e.Enabled {
			enabled = "no"
		}
		rows = append(rows, []string{e.ID, strings.Join(e.AssistIDs, ", "), enabled, e.Description})
	}

	table := pretty.NewTableFormatter(r.styles, r.width)
	fmt.Fprint(r.bw, table.Format([]string{"HANDLER", "ASSISTS", "ENABLED", "DESCRIPTION"}, rows))

	return nil
}
