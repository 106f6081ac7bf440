// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/yaklabco/assistkit/pkg/config"
)

// DefaultWidth is used when the terminal width cannot be determined.
const DefaultWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Assist components
	FilePath lipgloss.Style
	Location lipgloss.Style
	AssistID lipgloss.Style
	Label    lipgloss.Style
	Group    lipgloss.Style

	// Source context
	SourceLine lipgloss.Style
	Marker     lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Status
	Success lipgloss.Style
	Failure lipgloss.Style
	Warning lipgloss.Style

	// Tables
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	fg := func(c string) lipgloss.Style { return lipgloss.NewStyle().Foreground(lipgloss.Color(c)) }

	return &Styles{
		FilePath: lipgloss.NewStyle().Bold(true),
		Location: fg("8"),
		AssistID: fg("8"),
		Label:    fg("14").Bold(true),
		Group:    fg("13").Italic(true),

		SourceLine: fg("7"),
		Marker:     fg("10"),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    fg("14"),
		DiffAdd:     fg("10"),
		DiffRemove:  fg("9"),
		DiffContext: fg("8"),

		Success: fg("10").Bold(true),
		Failure: fg("9").Bold(true),
		Warning: fg("11").Bold(true),

		TableHeader:    fg("7").Bold(true),
		TableSeparator: fg("8"),

		Dim:  fg("8"),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:       plain,
		Location:       plain,
		AssistID:       plain,
		Label:          plain,
		Group:          plain,
		SourceLine:     plain,
		Marker:         plain,
		DiffHeader:     plain,
		DiffHunk:       plain,
		DiffAdd:        plain,
		DiffRemove:     plain,
		DiffContext:    plain,
		Success:        plain,
		Failure:        plain,
		Warning:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode config.ColorMode, writer io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TermWidth returns the width of the terminal behind writer, or
// DefaultWidth when writer is not a terminal.
func TermWidth(writer io.Writer) int {
	f, ok := writer.(*os.File)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
