// Package assist provides the handler contract, registry and engine that
// list and resolve code assists at a caret or selection.
package assist

import (
	"errors"

	"github.com/yaklabco/assistkit/pkg/fix"
)

// ErrInvalidSelection is returned when a selection is reversed, out of the
// buffer, or splits a multi-byte character.
var ErrInvalidSelection = errors.New("invalid selection")

// Mode selects how much work handlers do when offering an assist.
type Mode int

const (
	// ModeList records the id and label of applicable assists only.
	ModeList Mode = iota

	// ModeResolve also builds the edit of every applicable assist.
	ModeResolve
)

func (m Mode) String() string {
	if m == ModeResolve {
		return "resolve"
	}
	return "list"
}

// Assist is one applicable transformation at the selection.
type Assist struct {
	// ID identifies the assist, e.g. "remove_digit_separators".
	ID string

	// Label is the human-readable action, e.g. "Remove digit separators".
	Label string

	// Group is an optional label grouping related assists.
	Group string

	// Handler is the ID of the handler that offered the assist.
	Handler string

	// Edit is the composed edit. Nil in list mode.
	Edit *fix.ComposedEdit
}

// TargetLen returns the length of the edit's target range, or false if the
// assist has no target.
func (a *Assist) TargetLen() (int, bool) {
	if a.Edit == nil {
		return 0, false
	}
	return a.Edit.TargetLen()
}

// Handler defines the interface that all assist handlers must implement.
type Handler interface {
	// ID returns the unique identifier for this handler.
	ID() string

	// Name returns the human-readable name of the handler.
	Name() string

	// Description returns what the handler's assists do.
	Description() string

	// Group returns the group label attached to offered assists.
	Group() string

	// Tags returns categorization tags for this handler.
	Tags() []string

	// DefaultEnabled returns whether the handler is enabled by default.
	DefaultEnabled() bool

	// Apply inspects the selection and offers applicable assists.
	//
	// Handlers must:
	//   - Keep the applicability check cheap and call ctx.Offer for each
	//     applicable assist, building edits only inside the build callback.
	//   - Treat non-applicability as a normal outcome, never as an error.
	//   - Leave the snapshot untouched and retain nothing after returning.
	Apply(ctx *Context) error
}

// Result contains the assists offered at one selection.
type Result struct {
	// Assists are the offered assists. In resolve mode they are sorted by
	// target length, narrowest first.
	Assists []Assist

	// HandlerErrors contains errors from handlers or failed builds, keyed
	// by handler ID.
	HandlerErrors map[string]error
}

// Find returns the assist with the given ID.
func (r *Result) Find(id string) (*Assist, bool) {
	for i := range r.Assists {
		if r.Assists[i].ID == id {
			return &r.Assists[i], true
		}
	}
	return nil, false
}

// IDs returns the offered assist IDs in result order.
func (r *Result) IDs() []string {
	ids := make([]string, 0, len(r.Assists))
	for _, a := range r.Assists {
		ids = append(ids, a.ID)
	}
	return ids
}

// Offerer is implemented by handlers whose assist IDs differ from their
// handler ID.
type Offerer interface {
	AssistIDs() []string
}

// AssistIDs returns the assist IDs a handler can offer.
func AssistIDs(h Handler) []string {
	if o, ok := h.(Offerer); ok {
		return o.AssistIDs()
	}
	return []string{h.ID()}
}
