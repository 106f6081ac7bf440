package configloader

import (
	"maps"

	"github.com/yaklabco/assistkit/pkg/config"
)

// merge combines two configurations, with override taking precedence:
//   - scalars overwrite base when non-zero
//   - assist maps merge per key, options per option key
//   - slices replace base when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	result.Assists = mergeAssists(base.Assists, override.Assists)

	if override.EnableAssists != nil {
		result.EnableAssists = override.EnableAssists
	}
	if override.DisableAssists != nil {
		result.DisableAssists = override.DisableAssists
	}

	return &result
}

func mergeAssists(base, override map[string]config.AssistConfig) map[string]config.AssistConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.AssistConfig, len(base)+len(override))
	maps.Copy(result, base)

	for id, ac := range override {
		existing, ok := result[id]
		if !ok {
			result[id] = ac
			continue
		}
		if ac.Enabled != nil {
			existing.Enabled = ac.Enabled
		}
		if ac.Options != nil {
			opts := make(map[string]any, len(existing.Options)+len(ac.Options))
			maps.Copy(opts, existing.Options)
			maps.Copy(opts, ac.Options)
			existing.Options = opts
		}
		result[id] = existing
	}

	return result
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	var result *config.Config
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}
