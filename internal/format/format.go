// Package format holds the text helpers shared by the terminal and HTML renderers.
package format

import (
	"html"
	"unicode/utf8"
)

// PreviewLimit is the number of characters of content shown for a list entry.
const PreviewLimit = 200

// Ellipsis is appended to text cut by Truncate.
const Ellipsis = "..."

// Truncate returns text unchanged if it has at most maxLength characters, otherwise
// the first maxLength characters followed by Ellipsis.
// Characters are Unicode code points, so a multi-byte sequence is never split.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	n := 0
	for i := range text {
		if n == maxLength {
			return text[:i] + Ellipsis
		}
		n++
	}
	return text
}

// EscapeHTML replaces <, >, &, ' and " with their entity forms so the result can be
// written into element content or a quoted attribute without being read as markup.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}
