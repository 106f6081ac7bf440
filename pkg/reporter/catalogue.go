package reporter

import (
	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/config"
)

// CatalogueEntry describes one registered handler.
type CatalogueEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Group       string   `json:"group,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AssistIDs   []string `json:"assistIds"`
	Enabled     bool     `json:"enabled"`
}

// NewCatalogue lists every handler in registry with its enablement under cfg.
func NewCatalogue(registry *assist.Registry, cfg *config.Config) []CatalogueEntry {
	resolved := assist.ResolveAll(registry, cfg)
	entries := make([]CatalogueEntry, 0, len(resolved))

	for _, rh := range resolved {
		h := rh.Handler
		entries = append(entries, CatalogueEntry{
			ID:          h.ID(),
			Name:        h.Name(),
			Description: h.Description(),
			Group:       h.Group(),
			Tags:        h.Tags(),
			AssistIDs:   assist.AssistIDs(h),
			Enabled:     rh.Enabled,
		})
	}

	return entries
}
