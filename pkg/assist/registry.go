package assist

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered assist handlers.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Handler
	byName map[string]Handler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Handler),
		byName: make(map[string]Handler),
	}
}

// Register adds a handler to the registry.
// If a handler with the same ID already exists, it is replaced.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[h.ID()] = h
	r.byName[h.Name()] = h
}

// Get retrieves a handler by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.byID[key]; ok {
		return h, true
	}
	if h, ok := r.byName[key]; ok {
		return h, true
	}
	return nil, false
}

// Handlers returns all registered handlers sorted by ID.
func (r *Registry) Handlers() []Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Handler, 0, len(r.byID))
	for _, h := range r.byID {
		result = append(result, h)
	}

	slices.SortFunc(result, func(a, b Handler) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered handler IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in handlers.
// Handlers register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for handler registration
var DefaultRegistry = NewRegistry()

// KnownIDs returns every handler ID and every assist ID a registered
// handler can offer, sorted and deduplicated.
func (r *Registry) KnownIDs() []string {
	var ids []string
	for _, h := range r.Handlers() {
		ids = append(ids, h.ID())
		ids = append(ids, AssistIDs(h)...)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
