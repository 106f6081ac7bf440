package assist

// BaseHandler provides a default implementation of the Handler interface.
// Embed this in handler implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseHandler struct {
	id    string
	name  string
	desc  string
	group string
	tags  []string
}

// NewBaseHandler creates a BaseHandler with the given properties.
func NewBaseHandler(id, name, desc string, tags []string) BaseHandler {
	return BaseHandler{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// WithGroup returns a copy of the handler with a group label.
func (h BaseHandler) WithGroup(group string) BaseHandler {
	h.group = group
	return h
}

// ID returns the unique identifier for this handler.
func (h *BaseHandler) ID() string {
	return h.id
}

// Name returns the human-readable name of the handler.
func (h *BaseHandler) Name() string {
	return h.name
}

// Description returns what the handler's assists do.
func (h *BaseHandler) Description() string {
	return h.desc
}

// Group returns the group label attached to offered assists.
func (h *BaseHandler) Group() string {
	return h.group
}

// Tags returns categorization tags for this handler.
func (h *BaseHandler) Tags() []string {
	return h.tags
}

// DefaultEnabled returns whether the handler is enabled by default.
// Override this method to change the default.
func (h *BaseHandler) DefaultEnabled() bool {
	return true
}

// Apply must be overridden by concrete handler implementations.
// The default implementation offers nothing.
func (h *BaseHandler) Apply(_ *Context) error {
	return nil
}
