package assist

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/assistkit/pkg/config"
	"github.com/yaklabco/assistkit/pkg/fix"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

// BuildFunc composes the edit of one assist.
type BuildFunc func(c *fix.Composer) error

// Context provides everything a handler needs to inspect a selection.
//
// Context stores context.Context as a field (Ctx) because it is a short-lived
// parameter object created per handler invocation.
type Context struct {
	// Ctx is the context for cancellation and timeouts.
	Ctx context.Context

	// File is the parsed, immutable snapshot.
	File *syntax.FileSnapshot

	// Selection is the caret (empty range) or selection.
	Selection syntax.TextRange

	// Mode selects list or resolve behaviour for Offer.
	Mode Mode

	// Config is the handler-specific configuration (may be nil).
	Config *config.AssistConfig

	handler  Handler
	allowed  func(id string) bool
	assists  []Assist
	failures []error
}

// NewContext creates a Context for one handler invocation.
func NewContext(
	ctx context.Context,
	file *syntax.FileSnapshot,
	selection syntax.TextRange,
	mode Mode,
	handler Handler,
	cfg *config.AssistConfig,
) *Context {
	return &Context{
		Ctx:       ctx,
		File:      file,
		Selection: selection,
		Mode:      mode,
		Config:    cfg,
		handler:   handler,
	}
}

// Cancelled returns true if the context has been cancelled.
func (c *Context) Cancelled() bool {
	select {
	case <-c.Ctx.Done():
		return true
	default:
		return false
	}
}

// CoveringToken returns the smallest token covering the selection. If kinds
// are given, the token must be of one of them.
func (c *Context) CoveringToken(kinds ...syntax.TokenKind) (syntax.Token, bool) {
	if c.File == nil || c.File.Tree == nil {
		return syntax.Token{}, false
	}

	tok, ok := c.File.Tree.CoveringToken(c.Selection)
	if !ok {
		return syntax.Token{}, false
	}
	if len(kinds) > 0 && !slices.Contains(kinds, tok.Kind) {
		return syntax.Token{}, false
	}

	return tok, true
}

// Offer records an applicable assist. In list mode build is never called.
// In resolve mode the edit is built and validated against the snapshot; a
// failing build drops this assist only and is reported as a handler error.
func (c *Context) Offer(id, label string, build BuildFunc) {
	if c.allowed != nil && !c.allowed(id) {
		return
	}

	a := Assist{
		ID:    id,
		Label: label,
	}
	if c.handler != nil {
		a.Group = c.handler.Group()
		a.Handler = c.handler.ID()
	}

	if c.Mode == ModeResolve {
		edit, err := c.build(build)
		if err != nil {
			c.failures = append(c.failures, fmt.Errorf("assist %s: %w", id, err))
			return
		}
		a.Edit = edit
	}

	c.assists = append(c.assists, a)
}

func (c *Context) build(build BuildFunc) (*fix.ComposedEdit, error) {
	if build == nil {
		return nil, errors.New("no edit builder")
	}

	composer := fix.NewComposer()
	if err := build(composer); err != nil {
		return nil, err
	}

	edit, err := composer.Finish()
	if err != nil {
		return nil, err
	}

	if _, _, err := edit.Finalize(c.File.Content); err != nil {
		return nil, err
	}

	return edit, nil
}

// Assists returns the assists offered so far.
func (c *Context) Assists() []Assist {
	return c.assists
}

// Err returns the joined errors of failed builds, or nil.
func (c *Context) Err() error {
	return errors.Join(c.failures...)
}

// Option returns a handler-specific option value, or the default if not set.
func (c *Context) Option(key string, defaultValue any) any {
	if c.Config == nil || c.Config.Options == nil {
		return defaultValue
	}
	if v, ok := c.Config.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a handler-specific integer option, or the default.
func (c *Context) OptionInt(key string, defaultValue int) int {
	v := c.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a handler-specific string option, or the default.
func (c *Context) OptionString(key string, defaultValue string) string {
	v := c.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a handler-specific boolean option, or the default.
func (c *Context) OptionBool(key string, defaultValue bool) bool {
	v := c.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}
