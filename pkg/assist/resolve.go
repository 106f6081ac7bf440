package assist

import (
	"slices"

	"github.com/yaklabco/assistkit/pkg/config"
)

// ResolvedHandler pairs a Handler with its resolved configuration.
type ResolvedHandler struct {
	// Handler is the underlying handler implementation.
	Handler Handler

	// Enabled indicates whether the handler should be run.
	Enabled bool

	// Config is the handler-specific configuration (may be nil).
	Config *config.AssistConfig
}

// ResolveHandlers determines which handlers to run based on registry and
// config. Returns only enabled handlers, in registry order.
func ResolveHandlers(registry *Registry, cfg *config.Config) []ResolvedHandler {
	var resolved []ResolvedHandler

	for _, rh := range ResolveAll(registry, cfg) {
		if rh.Enabled {
			resolved = append(resolved, rh)
		}
	}

	return resolved
}

// ResolveAll resolves every registered handler, enabled or not, in
// registry order.
func ResolveAll(registry *Registry, cfg *config.Config) []ResolvedHandler {
	handlers := registry.Handlers()
	resolved := make([]ResolvedHandler, 0, len(handlers))
	for _, h := range handlers {
		resolved = append(resolved, resolveHandler(h, cfg))
	}
	return resolved
}

// resolveHandler resolves the configuration for a single handler.
// Precedence, lowest first: handler default, config file, CLI flags.
func resolveHandler(h Handler, cfg *config.Config) ResolvedHandler {
	rh := ResolvedHandler{
		Handler: h,
		Enabled: h.DefaultEnabled(),
	}

	if cfg == nil {
		return rh
	}

	if ac, ok := cfg.Assists[h.ID()]; ok {
		rh.Config = &ac
		if ac.Enabled != nil {
			rh.Enabled = *ac.Enabled
		}
	}

	if slices.Contains(cfg.EnableAssists, h.ID()) {
		rh.Enabled = true
	}
	if slices.Contains(cfg.DisableAssists, h.ID()) {
		rh.Enabled = false
	}

	return rh
}

// assistAllowed returns a filter for individual assist IDs offered by a
// handler. An assist is dropped when the config or the CLI disables its ID.
func assistAllowed(cfg *config.Config) func(id string) bool {
	if cfg == nil {
		return nil
	}
	return func(id string) bool {
		if slices.Contains(cfg.EnableAssists, id) {
			return true
		}
		if slices.Contains(cfg.DisableAssists, id) {
			return false
		}
		if ac, ok := cfg.Assists[id]; ok && ac.Enabled != nil {
			return *ac.Enabled
		}
		return true
	}
}
