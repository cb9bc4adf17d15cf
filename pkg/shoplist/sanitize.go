package shoplist

import (
	"regexp"

	"github.com/dmitrymomot/shoplist/pkg/sanitizer"
)

// QuantityChars is the set of runes a quantity may contain after normalisation.
const QuantityChars = "0123456789kg"

var (
	// partialQuantity accepts the in-progress "10k" state while typing.
	partialQuantity = regexp.MustCompile(`^\d+(k|kg|g)?$`)
	// strictQuantity is the committed grammar.
	strictQuantity = regexp.MustCompile(`^\d+(kg|g)?$`)
)

var normalizeQuantity = sanitizer.Compose(
	sanitizer.ToLower,
	sanitizer.StripWhitespace,
	sanitizer.KeepChars(QuantityChars),
)

// SanitizeName removes every rune that is not a letter or whitespace. It
// only deletes, so the result is a subsequence of s and a decomposed
// "e\u0301" loses its combining accent.
// SanitizeName(SanitizeName(s)) == SanitizeName(s).
func SanitizeName(s string) string {
	return sanitizer.KeepAlpha(s)
}

// SanitizeQuantity normalises s toward digits[(g|kg)]. Input is lowercased,
// stripped of whitespace and of runes outside QuantityChars. A result that
// matches digits[(k|kg|g)] is returned as is; anything else falls back to
// its leading digits, or "" when there are none.
func SanitizeQuantity(s string) string {
	normalized := normalizeQuantity(s)
	if partialQuantity.MatchString(normalized) {
		return normalized
	}
	return sanitizer.LeadingDigits(normalized)
}

// FinalizeQuantity is the commit-time check: a value outside the strict
// grammar loses one trailing "k", so "10k" becomes "10".
func FinalizeQuantity(s string) string {
	if strictQuantity.MatchString(s) {
		return s
	}
	if n := len(s); n > 0 && s[n-1] == 'k' {
		return s[:n-1]
	}
	return s
}

// IsValidQuantity reports whether s matches the strict grammar digits[(kg|g)].
func IsValidQuantity(s string) bool {
	return strictQuantity.MatchString(s)
}
