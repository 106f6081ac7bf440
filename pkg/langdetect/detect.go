// Package langdetect identifies the language of a source file so the CLI
// can pick a parser, using go-enry's filename, extension and content
// strategies.
package langdetect

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Rust is the identifier of the only language assists are offered for.
const Rust = "rust"

// ErrUnsupportedLanguage is returned when no parser exists for a file's language.
var ErrUnsupportedLanguage = errors.New("unsupported language")

//nolint:gochecknoglobals // Read-only lookup table.
var supported = []string{Rust}

// Supported returns the languages with a parser.
func Supported() []string {
	return slices.Clone(supported)
}

// Detect returns the normalised language of the file at path, or "" when
// go-enry cannot tell. Content may be nil, in which case only the path is used.
func Detect(path string, content []byte) string {
	candidates := enry.GetLanguagesByExtension(path, content, nil)
	if len(candidates) == 1 {
		return normalize(candidates[0])
	}
	// Ambiguous extensions (.rs is also RenderScript) prefer a supported language.
	for _, c := range candidates {
		if lang := normalize(c); slices.Contains(supported, lang) {
			return lang
		}
	}
	if lang, safe := enry.GetLanguageByFilename(path); safe {
		return normalize(lang)
	}
	if len(content) == 0 {
		return ""
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}
	if enry.IsVendor(path) || enry.IsBinary(content) {
		return ""
	}
	return normalize(enry.GetLanguage(path, content))
}

// Resolve returns override when set, otherwise the detected language, and
// fails with ErrUnsupportedLanguage if the result has no parser.
func Resolve(path string, content []byte, override string) (string, error) {
	lang := normalize(override)
	if lang == "" {
		lang = Detect(path, content)
	}

	if !slices.Contains(supported, lang) {
		if lang == "" {
			lang = "unknown"
		}
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedLanguage, lang, path)
	}
	return lang, nil
}

// normalize lowercases enry's display names and maps a few aliases.
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "rs":
		return Rust
	default:
		return lang
	}
}
