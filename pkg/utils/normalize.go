package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// StripAccents removes diacritical marks ("artículo" -> "articulo").
// Used for matching only; user-facing text keeps its accents.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeQuery lowercases, strips accents and collapses whitespace so
// trigger phrases and keyword probes match regardless of typing style.
func NormalizeQuery(s string) string {
	s = strings.ToLower(StripAccents(s))
	return strings.Join(strings.Fields(s), " ")
}
