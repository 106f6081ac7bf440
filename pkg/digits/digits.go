// Package digits groups and ungroups the digit run of a numeric literal.
//
// Grouping is right-aligned: groups are counted from the least significant
// digit, and the leftmost group absorbs any remainder. All functions ignore
// separators already present in their input, which makes Group idempotent.
package digits

import "strings"

// Separator is the digit group separator character.
const Separator = '_'

// HasSeparator reports whether s contains at least one separator.
func HasSeparator(s string) bool {
	return strings.ContainsRune(s, Separator)
}

// Strip removes every separator from s.
func Strip(s string) string {
	if !HasSeparator(s) {
		return s
	}
	return strings.ReplaceAll(s, string(Separator), "")
}

// Count returns the number of digits in s, not counting separators.
func Count(s string) int {
	return len(s) - strings.Count(s, string(Separator))
}

// Group returns the digits of s split into groups of size characters,
// counted from the right. Existing separators are discarded first.
//
//	Group("24204242420", 4) == "242_0424_2420"
//	Group("1_2_3_4_5_6_7_8_9", 2) == "1_23_45_67_89"
//
// A non-positive size yields the stripped digits.
func Group(s string, size int) string {
	canonical := Strip(s)
	n := len(canonical)
	if size <= 0 || n <= size {
		return canonical
	}

	offset := size - n%size

	var builder strings.Builder
	builder.Grow(n + n/size)
	for i := 0; i < n; i++ {
		if i != 0 && (i+offset)%size == 0 {
			builder.WriteByte(Separator)
		}
		builder.WriteByte(canonical[i])
	}

	return builder.String()
}
