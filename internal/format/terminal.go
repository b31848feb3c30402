package format

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// SanitizeTerminal strips escape sequences and control characters from server text
// before it is written to a terminal. Newlines and tabs survive unless singleLine is
// set, in which case they become spaces.
func SanitizeTerminal(text string, singleLine bool) string {
	text = ansi.Strip(text)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			if singleLine {
				return ' '
			}
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, text)
}
