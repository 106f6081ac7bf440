package assist_test

import (
	"errors"

	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/fix"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

// stubTree covers every range with the same token.
type stubTree struct {
	tok syntax.Token
}

func (s stubTree) CoveringToken(r syntax.TextRange) (syntax.Token, bool) {
	if !s.tok.Range.ContainsRange(r) {
		return syntax.Token{}, false
	}
	return s.tok, true
}

func (s stubTree) CoveringNode(syntax.TextRange) (syntax.Node, bool) { return nil, false }
func (s stubTree) Parent(syntax.Node) (syntax.Node, bool)            { return nil, false }
func (s stubTree) CalleeName(syntax.Node) (string, bool)             { return "", false }

// newSnapshot returns a snapshot of content whose only token spans it all.
func newSnapshot(content string, kind syntax.TokenKind) *syntax.FileSnapshot {
	file := syntax.NewFileSnapshot("test.rs", []byte(content))
	file.Tree = stubTree{tok: syntax.Token{
		Kind:  kind,
		Range: syntax.NewRange(0, len(content)),
		Text:  content,
	}}
	return file
}

// fakeHandler offers a single replacement of [start, end).
type fakeHandler struct {
	assist.BaseHandler

	start, end int
	text       string
	noTarget   bool
	buildErr   error
	applyErr   error
	built      *int
}

func newFakeHandler(id string, start, end int) *fakeHandler {
	return &fakeHandler{
		BaseHandler: assist.NewBaseHandler(id, id+"-name", "fake handler", []string{"test"}),
		start:       start,
		end:         end,
		text:        "x",
	}
}

func (h *fakeHandler) Apply(ctx *assist.Context) error {
	if h.applyErr != nil {
		return h.applyErr
	}

	ctx.Offer(h.ID(), "Fake "+h.ID(), func(c *fix.Composer) error {
		if h.built != nil {
			*h.built++
		}
		if h.buildErr != nil {
			return h.buildErr
		}
		c.ReplaceRange(h.start, h.end, h.text)
		if !h.noTarget {
			c.SetTarget(syntax.NewRange(h.start, h.end))
		}
		return nil
	})
	return nil
}

// disabledHandler is off unless enabled explicitly.
type disabledHandler struct {
	*fakeHandler
}

func (disabledHandler) DefaultEnabled() bool { return false }

var errBoom = errors.New("boom")
