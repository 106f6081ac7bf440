package handlers

import (
	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/fix"
	"github.com/yaklabco/assistkit/pkg/split"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

const (
	splitStringID    = "split_string"
	splitStringLabel = "Split string"
)

// SplitStringHandler splits a string literal into concat! arguments.
type SplitStringHandler struct {
	assist.BaseHandler
}

// NewSplitStringHandler creates a new split_string handler.
func NewSplitStringHandler() *SplitStringHandler {
	return &SplitStringHandler{
		BaseHandler: assist.NewBaseHandler(
			splitStringID,
			"split-string",
			"Split a string literal at the caret or around the selection",
			[]string{"string"},
		),
	}
}

// Apply offers the split when the selection lies inside the quotes.
func (h *SplitStringHandler) Apply(ctx *assist.Context) error {
	tok, ok := ctx.CoveringToken(syntax.TokString)
	if !ok {
		return nil
	}

	plan, ok := split.ForToken(tok, ctx.Selection, split.TreeLookup{Tree: ctx.File.Tree})
	if !ok {
		return nil
	}

	ctx.Offer(splitStringID, splitStringLabel, func(c *fix.Composer) error {
		return plan.Compose(c)
	})

	return nil
}
