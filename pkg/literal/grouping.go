package literal

// GroupingSpec describes how the digits of one literal kind are grouped.
type GroupingSpec struct {
	// GroupSize is the number of digits per group, counted from the right.
	GroupSize int

	// AssistID identifies the assist that applies this grouping.
	AssistID string

	// Label is the user-facing assist label.
	Label string
}

// Octal has no entry: grouping octal digits is deliberately not offered.
//
//nolint:gochecknoglobals // Read-only lookup table.
var groupings = map[NumberType]GroupingSpec{
	Decimal: {GroupSize: 3, AssistID: "separate_decimal_thousands", Label: "Separate thousands"},
	Hex:     {GroupSize: 4, AssistID: "separate_hexadecimal_words", Label: "Separate 16-bit words"},
	Binary:  {GroupSize: 8, AssistID: "separate_binary_bytes", Label: "Separate bytes"},
}

// Grouping returns the grouping for t, or false if t has none.
func Grouping(t NumberType) (GroupingSpec, bool) {
	spec, ok := groupings[t]
	return spec, ok
}

// Groupings returns every grouping, ordered decimal, hexadecimal, binary.
func Groupings() []GroupingSpec {
	return []GroupingSpec{groupings[Decimal], groupings[Hex], groupings[Binary]}
}
