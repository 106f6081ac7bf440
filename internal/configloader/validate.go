package configloader

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/config"
)

// ValidationError represents a configuration validation finding.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "assists.split_string").
	Field string

	Value   any
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors prevent loading.
	Errors []ValidationError

	// Warnings are reported but do not prevent loading.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) errorf(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warnf(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks cfg for errors and warnings. Assist keys and --enable or
// --disable IDs that registry does not know produce warnings.
func Validate(cfg *config.Config, registry *assist.Registry) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.errorf("format", cfg.Format, "invalid format %q; must be one of: text, json, html", cfg.Format)
	}
	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.errorf("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}
	if cfg.Jobs < 0 {
		result.errorf("jobs", cfg.Jobs, "jobs must be >= 0 (0 means GOMAXPROCS)")
	}

	if registry == nil {
		return result
	}

	known := registry.KnownIDs()
	isKnown := func(id string) bool {
		if _, found := slices.BinarySearch(known, id); found {
			return true
		}
		_, ok := registry.Get(id)
		return ok
	}

	for _, id := range slices.Sorted(maps.Keys(cfg.Assists)) {
		if !isKnown(id) {
			result.warnf("assists."+id, id, "unknown assist %q; it will be ignored", id)
		}
	}

	for _, list := range []struct {
		flag string
		ids  []string
	}{
		{"enable", cfg.EnableAssists},
		{"disable", cfg.DisableAssists},
	} {
		for _, id := range list.ids {
			if !isKnown(id) {
				result.warnf(list.flag, id, "unknown assist %q", id)
			}
		}
	}

	return result
}

// ValidateWithFile validates cfg and attributes every finding to filePath.
func ValidateWithFile(cfg *config.Config, registry *assist.Registry, filePath string) *ValidationResult {
	result := Validate(cfg, registry)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
