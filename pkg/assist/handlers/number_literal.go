package handlers

import (
	"github.com/yaklabco/assistkit/pkg/assist"
	"github.com/yaklabco/assistkit/pkg/digits"
	"github.com/yaklabco/assistkit/pkg/fix"
	"github.com/yaklabco/assistkit/pkg/literal"
	"github.com/yaklabco/assistkit/pkg/syntax"
)

// Assist IDs and labels offered by the number literal handlers.
const (
	removeDigitSeparatorsID    = "remove_digit_separators"
	removeDigitSeparatorsLabel = "Remove digit separators"
	separateNumberLiteralID    = "separate_number_literal"
)

// RemoveDigitSeparatorsHandler strips '_' separators from integer literals.
type RemoveDigitSeparatorsHandler struct {
	assist.BaseHandler
}

// NewRemoveDigitSeparatorsHandler creates a new remove_digit_separators handler.
func NewRemoveDigitSeparatorsHandler() *RemoveDigitSeparatorsHandler {
	return &RemoveDigitSeparatorsHandler{
		BaseHandler: assist.NewBaseHandler(
			removeDigitSeparatorsID,
			"remove-digit-separators",
			"Remove digit separators from an integer literal",
			[]string{"number"},
		),
	}
}

// Apply offers the removal when the covering integer literal has a separator.
func (h *RemoveDigitSeparatorsHandler) Apply(ctx *assist.Context) error {
	tok, ok := ctx.CoveringToken(syntax.TokIntNumber)
	if !ok || !digits.HasSeparator(tok.Text) {
		return nil
	}

	lit, err := literal.FromToken(tok)
	if err != nil {
		return nil //nolint:nilerr // A token that does not decompose is simply not applicable.
	}

	ctx.Offer(removeDigitSeparatorsID, removeDigitSeparatorsLabel, func(c *fix.Composer) error {
		c.Replace(tok.Range, lit.WithDigits(digits.Strip(lit.Digits)).String())
		c.SetTarget(tok.Range)
		return nil
	})

	return nil
}

// SeparateNumberLiteralHandler groups the digits of an integer literal.
type SeparateNumberLiteralHandler struct {
	assist.BaseHandler
}

// NewSeparateNumberLiteralHandler creates a new separate_number_literal handler.
func NewSeparateNumberLiteralHandler() *SeparateNumberLiteralHandler {
	return &SeparateNumberLiteralHandler{
		BaseHandler: assist.NewBaseHandler(
			separateNumberLiteralID,
			"separate-number-literal",
			"Insert digit separators into a decimal, hexadecimal or binary literal",
			[]string{"number"},
		),
	}
}

// Apply offers grouping when the literal kind has a grouping, the literal
// is longer than one group, and grouping would change its digits.
func (h *SeparateNumberLiteralHandler) Apply(ctx *assist.Context) error {
	tok, ok := ctx.CoveringToken(syntax.TokIntNumber)
	if !ok {
		return nil
	}

	lit, err := literal.FromToken(tok)
	if err != nil {
		return nil //nolint:nilerr // A token that does not decompose is simply not applicable.
	}

	spec, ok := literal.Grouping(lit.Type)
	if !ok || digits.Count(lit.Digits) <= spec.GroupSize {
		return nil
	}

	grouped := digits.Group(lit.Digits, spec.GroupSize)
	if grouped == lit.Digits {
		return nil
	}

	ctx.Offer(spec.AssistID, spec.Label, func(c *fix.Composer) error {
		c.Replace(tok.Range, lit.WithDigits(grouped).String())
		c.SetTarget(tok.Range)
		return nil
	})

	return nil
}

// AssistIDs returns the grouping assist IDs this handler can offer.
func (h *SeparateNumberLiteralHandler) AssistIDs() []string {
	specs := literal.Groupings()
	ids := make([]string, 0, len(specs))
	for _, spec := range specs {
		ids = append(ids, spec.AssistID)
	}
	return ids
}
