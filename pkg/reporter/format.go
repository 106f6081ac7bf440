package reporter

import (
	"fmt"
	"strings"

	"github.com/yaklabco/assistkit/pkg/config"
)

// Format is an output format. It shares its values with the configured
// config.OutputFormat so a loaded config can be passed straight through.
type Format = config.OutputFormat

// Output formats supported by the reporter.
const (
	FormatText = config.FormatText
	FormatJSON = config.FormatJSON
	FormatHTML = config.FormatHTML
)

// ParseFormat parses a case-insensitive format name. The empty string
// selects FormatText.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: %s, %s, %s", s, FormatText, FormatJSON, FormatHTML)
	}
	return f, nil
}
