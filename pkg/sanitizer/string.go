package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IsSpace reports whether r is whitespace in the sense of the browser's
// regular expression \s and String.prototype.trim: unicode.IsSpace minus
// U+0085 (NEL), plus U+FEFF (BOM). Every helper here classifies whitespace
// with it, so text filtered on the server matches what the page filters.
func IsSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

// Trim removes leading and trailing whitespace as classified by IsSpace.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// ToLower applies full Unicode lower casing, including the special cases
// that strings.ToLower maps rune by rune (e.g. "İ" becomes "i̇").
// A Caser is not safe for concurrent use, so one is built per call.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// StripWhitespace removes every IsSpace rune, including inner ones.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// KeepAlpha keeps only letters (Unicode category L) and IsSpace runes. It
// only deletes: the kept runes are returned unchanged and in order, so
// combining marks are dropped rather than composed into their base letter.
func KeepAlpha(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// KeepChars returns a transform that keeps only runes present in allowed.
// Matching is exact; callers lowercase first when case should not matter.
func KeepChars(allowed string) func(string) string {
	return func(s string) string {
		return strings.Map(func(r rune) rune {
			if strings.ContainsRune(allowed, r) {
				return r
			}
			return -1
		}, s)
	}
}

// LeadingDigits returns the longest prefix made of ASCII digits 0-9.
func LeadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
