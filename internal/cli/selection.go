package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

// selectionFlags address a caret or selection either by LINE:COLUMN
// positions or by byte offsets.
type selectionFlags struct {
	at     string
	to     string
	offset int
	end    int
}

func addSelectionFlags(cmd *cobra.Command, flags *selectionFlags) {
	cmd.Flags().StringVar(&flags.at, "at", "", "caret or selection start as LINE:COLUMN (1-based, columns in characters)")
	cmd.Flags().StringVar(&flags.to, "to", "", "selection end as LINE:COLUMN")
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "caret or selection start as a byte offset")
	cmd.Flags().IntVar(&flags.end, "end", 0, "selection end as a byte offset")
}

// resolve converts the flags into a byte range of file. Without an end
// the selection is an empty caret at the start.
func (f *selectionFlags) resolve(cmd *cobra.Command, file *syntax.FileSnapshot) (syntax.TextRange, error) {
	changed := cmd.Flags().Changed

	if changed("at") == changed("offset") {
		return syntax.TextRange{}, fmt.Errorf("%w: exactly one of --at or --offset is required", ErrUsage)
	}
	if changed("to") && changed("end") {
		return syntax.TextRange{}, fmt.Errorf("%w: --to and --end are mutually exclusive", ErrUsage)
	}

	start := f.offset
	if changed("at") {
		offset, err := positionOffset(file, f.at)
		if err != nil {
			return syntax.TextRange{}, err
		}
		start = offset
	}

	end := start
	switch {
	case changed("to"):
		offset, err := positionOffset(file, f.to)
		if err != nil {
			return syntax.TextRange{}, err
		}
		end = offset
	case changed("end"):
		end = f.end
	}

	return syntax.NewRange(start, end), nil
}

// parsePosition parses a LINE:COLUMN pair.
func parsePosition(s string) (int, int, error) {
	lineText, colText, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: position %q must be LINE:COLUMN", ErrUsage, s)
	}

	line, err := strconv.Atoi(lineText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: position %q: bad line: %w", ErrUsage, s, err)
	}
	col, err := strconv.Atoi(colText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: position %q: bad column: %w", ErrUsage, s, err)
	}

	return line, col, nil
}

func positionOffset(file *syntax.FileSnapshot, s string) (int, error) {
	line, col, err := parsePosition(s)
	if err != nil {
		return 0, err
	}

	offset, ok := file.Offset(line, col)
	if !ok {
		return 0, fmt.Errorf("%w: position %s is outside %s", assist.ErrInvalidSelection, s, file.Path)
	}
	return offset, nil
}
