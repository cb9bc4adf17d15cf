// Package sanitizer provides small, stateless helpers for filtering raw text
// input down to a restricted character set.
//
// The helpers never fail: they always return a (possibly empty) string. They
// are safe for concurrent use and can be chained with Apply or stored as a
// reusable pipeline with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.ToLower,
//	    sanitizer.StripWhitespace,
//	    sanitizer.KeepChars("0123456789kg"),
//	)
//
//	clean(" 10 Kg ") // "10kg"
//
// Letters follow unicode.IsLetter, so KeepAlpha keeps "Açúcar" intact while
// dropping digits and punctuation. Whitespace follows IsSpace, the set the
// browser uses for \s, so the page and the server agree on what a space is.
package sanitizer
