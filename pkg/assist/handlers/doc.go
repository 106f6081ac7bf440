// Package handlers provides the built-in assist handlers.
//
// # Handlers
//
//   - remove_digit_separators: Remove digit separators from an integer
//     literal, e.g. 42_420u32 becomes 42420u32.
//
//   - separate_number_literal: Group the digits of a decimal, hexadecimal or
//     binary literal into thousands, 16-bit words or bytes. Offered as
//     separate_decimal_thousands, separate_hexadecimal_words and
//     separate_binary_bytes. Octal literals are never grouped.
//
//   - split_string: Split a string literal at the caret, or around the
//     selection, into concat! arguments.
//
// # Registration
//
// Handlers are registered with the default registry via RegisterAll.
package handlers
