package reporter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/assistkit/pkg/assist"
)

// HTMLReporter renders results as a standalone HTML page. The page body is
// built as Markdown and converted with goldmark.
type HTMLReporter struct {
	opts     Options
	markdown goldmark.Markdown
	bw       *bufio.Writer
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{
		opts:     opts,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		bw:       bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *HTMLReporter) Report(_ context.Context, report *Report) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var md strings.Builder
	count := 0
	title := "assistkit"

	if report != nil && report.Snapshot != nil && report.Result != nil {
		file := report.Snapshot
		start := positionOf(file, report.Selection.Start)
		title = fmt.Sprintf("%s:%d:%d", file.Path, start.Line, start.Column)

		fmt.Fprintf(&md, "# %s assists at `%s`\n\n", modeName(report.Mode), title)

		for i := range report.Result.Assists {
			a := &report.Result.Assists[i]
			fmt.Fprintf(&md, "## %d. %s\n\n`%s`", i+1, escapeMarkdown(a.Label), a.ID)
			if a.Group != "" {
				fmt.Fprintf(&md, " in *%s*", escapeMarkdown(a.Group))
			}
			md.WriteString("\n\n")

			if report.Mode == assist.ModeResolve && r.opts.ShowDiff {
				p, err := previewAssist(file, report.Selection, a)
				if err != nil {
					return 0, err
				}
				if p != nil && p.Diff.HasChanges() {
					md.WriteString(fence("diff", p.Diff.Text))
				}
			}
		}
		count = len(report.Result.Assists)

		if count == 0 {
			md.WriteString("No assists available.\n")
		}
	}

	return count, r.writePage(title, md.String())
}

// Catalogue implements Reporter.
func (r *HTMLReporter) Catalogue(_ context.Context, entries []CatalogueEntry) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var md strings.Builder
	md.WriteString("# Assists\n\n")
	md.WriteString("| Handler | Assists | Enabled | Description |\n")
	md.WriteString("| --- | --- | --- | --- |\n")

	for _, e := range entries {
		ids := make([]string, 0, len(e.AssistIDs))
		for _, id := range e.AssistIDs {
			ids = append(ids, "`"+id+"`")
		}
		enabled := "yes"
		if !e.Enabled {
			enabled = "no"
		}
		fmt.Fprintf(&md, "| `%s` | %s | %s | %s |\n",
			e.ID, strings.Join(ids, ", "), enabled, escapeMarkdown(e.Description))
	}

	return r.writePage("assistkit assists", md.String())
}

func (r *HTMLReporter) writePage(title, markdown string) error {
	var body bytes.Buffer
	if err := r.markdown.Convert([]byte(markdown), &body); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	fmt.Fprintf(r.bw, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		html.EscapeString(title))
	if _, err := r.bw.Write(body.Bytes()); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	fmt.Fprint(r.bw, "</body>\n</html>\n")

	return nil
}

func modeName(m assist.Mode) string {
	if m == assist.ModeResolve {
		return "Resolved"
	}
	return "Available"
}

// fence wraps text in a fenced code block long enough not to collide with
// backtick runs inside it.
func fence(lang, text string) string {
	marker := "```"
	for strings.Contains(text, marker) {
		marker += "`"
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return marker + lang + "\n" + text + marker + "\n\n"
}

//nolint:gochecknoglobals // Read-only replacer.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "|", `\|`,
	"<", "&lt;", ">", "&gt;", "[", `\[`, "]", `\]`, "#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
