package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/assistkit/pkg/syntax"
)

// JSONOutput is the top-level JSON structure of a list or resolve run.
type JSONOutput struct {
	Version   string            `json:"version"`
	Path      string            `json:"path"`
	Mode      string            `json:"mode"`
	Selection JSONRange         `json:"selection"`
	Assists   []JSONAssist      `json:"assists"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// JSONRange is a byte range with its line and column positions.
type JSONRange struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	StartPos position `json:"startPos"`
	EndPos   position `json:"endPos"`
}

// JSONAssist represents one offered assist. Edit fields are only present
// in resolve mode.
type JSONAssist struct {
	ID      string     `json:"id"`
	Label   string     `json:"label"`
	Group   string     `json:"group,omitempty"`
	Handler string     `json:"handler"`
	Target  *JSONRange `json:"target,omitempty"`
	Edits   []JSONEdit `json:"edits,omitempty"`
	Cursor  *int       `json:"cursor,omitempty"`
	Diff    string     `json:"diff,omitempty"`
}

// JSONEdit is a single replacement in original-buffer coordinates.
type JSONEdit struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONCatalogue is the top-level JSON structure of the assist catalogue.
type JSONCatalogue struct {
	Version  string           `json:"version"`
	Handlers []CatalogueEntry `json:"handlers"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, report *Report) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output, err := r.buildOutput(report)
	if err != nil {
		return 0, err
	}

	if err := r.encode(output); err != nil {
		return 0, err
	}

	return len(output.Assists), nil
}

// Catalogue implements Reporter.
func (r *JSONReporter) Catalogue(_ context.Context, entries []CatalogueEntry) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if entries == nil {
		entries = []CatalogueEntry{}
	}
	return r.encode(&JSONCatalogue{Version: schemaVersion, Handlers: entries})
}

func (r *JSONReporter) encode(v any) error {
	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func (r *JSONReporter) buildOutput(report *Report) (*JSONOutput, error) {
	output := &JSONOutput{
		Version: schemaVersion,
		Assists: make([]JSONAssist, 0),
	}

	if report == nil || report.Snapshot == nil || report.Result == nil {
		return output, nil
	}

	file := report.Snapshot
	output.Path = file.Path
	output.Mode = report.Mode.String()
	output.Selection = jsonRange(file, report.Selection)

	for i := range report.Result.Assists {
		a := &report.Result.Assists[i]
		ja := JSONAssist{
			ID:      a.ID,
			Label:   a.Label,
			Group:   a.Group,
			Handler: a.Handler,
		}

		if a.Edit != nil {
			if a.Edit.Target != nil {
				target := jsonRange(file, *a.Edit.Target)
				ja.Target = &target
			}
			for _, e := range a.Edit.Edits {
				ja.Edits = append(ja.Edits, JSONEdit{StartOffset: e.StartOffset, EndOffset: e.EndOffset, NewText: e.NewText})
			}

			p, err := previewAssist(file, report.Selection, a)
			if err != nil {
				return nil, err
			}
			cursor := p.Cursor
			ja.Cursor = &cursor
			if r.opts.ShowDiff {
				ja.Diff = p.Diff.Text
			}
		}

		output.Assists = append(output.Assists, ja)
	}

	if len(report.Result.HandlerErrors) > 0 {
		output.Errors = make(map[string]string, len(report.Result.HandlerErrors))
		for id, err := range report.Result.HandlerErrors {
			output.Errors[id] = err.Error()
		}
	}

	return output, nil
}

func jsonRange(file *syntax.FileSnapshot, r syntax.TextRange) JSONRange {
	return JSONRange{
		Start:    r.Start,
		End:      r.End,
		StartPos: positionOf(file, r.Start),
		EndPos:   positionOf(file, r.End),
	}
}
