package configloader

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/assistkit/pkg/config"
)

// EnvPrefix is the prefix for all assistkit environment variables.
const EnvPrefix = "ASSISTKIT_"

// envVar binds one environment variable to a config setter.
type envVar struct {
	suffix string
	help   string
	apply  func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // Read-only lookup table.
var envVars = []envVar{
	{
		suffix: "JOBS",
		help:   "Number of handlers evaluated in parallel (0 = GOMAXPROCS)",
		apply: func(cfg *config.Config, value string) error {
			jobs, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer %q", value)
			}
			cfg.Jobs = jobs
			return nil
		},
	},
	{
		suffix: "FORMAT",
		help:   "Output format: text, json or html",
		apply: func(cfg *config.Config, value string) error {
			cfg.Format = config.OutputFormat(value)
			return nil
		},
	},
	{
		suffix: "COLOR",
		help:   "Colour mode: auto, always or never",
		apply: func(cfg *config.Config, value string) error {
			cfg.Color = config.ColorMode(value)
			return nil
		},
	},
	{
		suffix: "ENABLE",
		help:   "Comma-separated assist IDs to enable",
		apply: func(cfg *config.Config, value string) error {
			cfg.EnableAssists = parseList(value)
			return nil
		},
	},
	{
		suffix: "DISABLE",
		help:   "Comma-separated assist IDs to disable",
		apply: func(cfg *config.Config, value string) error {
			cfg.DisableAssists = parseList(value)
			return nil
		},
	},
}

// LoadFromEnv applies ASSISTKIT_* environment variables to cfg.
// Empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, v := range envVars {
		name := EnvPrefix + v.suffix
		value := strings.TrimSpace(os.Getenv(name))
		if value == "" {
			continue
		}
		if err := v.apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// parseList splits a comma-separated value, dropping empty elements.
func parseList(value string) []string {
	var result []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns the supported environment variables and their help
// text, sorted by name.
func ListEnvVars() [][2]string {
	result := make([][2]string, 0, len(envVars))
	for _, v := range envVars {
		result = append(result, [2]string{EnvPrefix + v.suffix, v.help})
	}
	slices.SortFunc(result, func(a, b [2]string) int { return strings.Compare(a[0], b[0]) })
	return result
}
