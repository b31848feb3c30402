package ui

import (
	"strings"
	"unicode/utf8"
)

// wrapText wraps text to fit within the specified width
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	var currentLine strings.Builder
	lineLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		potentialLength := lineLen + wordLen
		if lineLen > 0 {
			potentialLength++ // Account for space
		}

		if potentialLength > width && lineLen > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			lineLen = 0
		}

		if lineLen > 0 {
			currentLine.WriteString(" ")
			lineLen++
		}
		currentLine.WriteString(word)
		lineLen += wordLen
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}

// indent prefixes every line of text
func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
