// Package config defines core configuration types for assistkit.
// These types are pure data structures with no dependency on the loader.
package config

// AssistConfig holds per-assist configuration options.
type AssistConfig struct {
	Enabled *bool          `yaml:"enabled,omitempty"`
	Options map[string]any `yaml:"options,omitempty"`
}

// OutputFormat specifies the output format for listed and resolved assists.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatHTML OutputFormat = "html"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatHTML:
		return true
	default:
		return false
	}
}

// ColorMode controls coloured terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the colour mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for assistkit.
type Config struct {
	// Assists contains per-assist configuration keyed by assist ID.
	Assists map[string]AssistConfig `yaml:"assists"`

	// Jobs is the number of handlers evaluated in parallel. 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format"`

	// Color controls coloured output.
	Color ColorMode `yaml:"color"`

	// CLI-level options (not persisted to config files).

	// EnableAssists contains assist IDs to explicitly enable.
	EnableAssists []string `yaml:"-"`

	// DisableAssists contains assist IDs to explicitly disable.
	DisableAssists []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Assists: make(map[string]AssistConfig),
		Jobs:    0, // 0 means use GOMAXPROCS
		Format:  FormatText,
		Color:   ColorAuto,
	}
}
