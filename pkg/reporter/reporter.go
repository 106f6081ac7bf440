// Package reporter renders listed and resolved assists, and the assist
// catalogue, as text, JSON or HTML.
package reporter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/config"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// schemaVersion versions the JSON output.
const schemaVersion = "1.0.0"

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
	_ Reporter = (*HTMLReporter)(nil)
)

// Reporter formats and writes assist results.
type Reporter interface {
	// Report writes the assists offered at one selection and returns how
	// many were reported.
	Report(ctx context.Context, report *Report) (int, error)

	// Catalogue writes the registered handlers and the assists they offer.
	Catalogue(ctx context.Context, entries []CatalogueEntry) error
}

// Report is the outcome of listing or resolving assists at a selection.
type Report struct {
	Snapshot  *syntax.FileSnapshot
	Selection syntax.TextRange
	Mode      assist.Mode
	Result    *assist.Result
}

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	Format Format
	Color  config.ColorMode

	// ShowContext includes the selected source line in text output.
	ShowContext bool

	// ShowDiff includes a unified diff preview of each resolved assist.
	ShowDiff bool

	// Compact uses minified JSON.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		Format:      FormatText,
		Color:       config.ColorAuto,
		ShowContext: true,
		ShowDiff:    true,
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatHTML:
		return NewHTMLReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// position is a 1-based line and character column.
type position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func positionOf(file *syntax.FileSnapshot, offset int) position {
	line, col := file.LineAt(offset)
	return position{Line: line, Column: col}
}

// preview is a resolved assist applied to the snapshot.
type preview struct {
	After  []byte
	Cursor int
	Diff   *Diff
}

// previewAssist applies a resolved assist's edit to the snapshot content.
// Without an explicit caret the selection end is carried through the edit.
func previewAssist(file *syntax.FileSnapshot, selection syntax.TextRange, a *assist.Assist) (*preview, error) {
	if a.Edit == nil {
		return nil, nil
	}

	after, err := a.Edit.Apply(file.Content)
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", a.ID, err)
	}

	diff, err := UnifiedDiff(file.Path, file.Content, after)
	if err != nil {
		return nil, err
	}

	return &preview{
		After:  after,
		Cursor: a.Edit.CursorOr(selection.End),
		Diff:   diff,
	}, nil
}
