package handlers

import "github.com/yaklabco/assistkit/pkg/assist"

// RegisterAll registers all built-in handlers with the given registry.
func RegisterAll(registry *assist.Registry) {
	// Number literal handlers
	registry.Register(NewRemoveDigitSeparatorsHandler())
	registry.Register(NewSeparateNumberLiteralHandler())

	// String handlers
	registry.Register(NewSplitStringHandler())
}

// init registers all built-in handlers with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic handler registration
func init() {
	RegisterAll(assist.DefaultRegistry)
}
