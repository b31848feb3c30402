package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Modal is a bordered overlay drawn over the main view
type Modal struct {
	title       string
	width       int
	height      int
	content     string
	visible     bool
	borderColor lipgloss.Color // Falls back to the theme accent when empty
}

// NewModal creates a new Modal instance
func NewModal(title string, width, height int) Modal {
	return Modal{
		title:  title,
		width:  width,
		height: height,
	}
}

// Show makes the modal visible
func (m *Modal) Show() {
	m.visible = true
}

// Hide makes the modal invisible
func (m *Modal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is currently visible
func (m Modal) IsVisible() bool {
	return m.visible
}

// SetContent updates the modal content
func (m *Modal) SetContent(content string) {
	m.content = content
}

// View renders the modal if visible
func (m Modal) View(theme StyleTheme) string {
	if !m.visible {
		return ""
	}

	border := theme.Cyan
	if m.borderColor != "" {
		border = m.borderColor
	}

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(m.width).
		Padding(1, 2)
	if m.height > 0 {
		modalStyle = modalStyle.Height(m.height)
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(border).
		MarginBottom(1)

	var fullContent strings.Builder
	if m.title != "" {
		fullContent.WriteString(titleStyle.Render(m.title))
		fullContent.WriteString("\n")
	}
	fullContent.WriteString(m.content)

	return modalStyle.Render(fullContent.String())
}

// ViewWithOverlay renders the modal centered over a blanked background
func (m Modal) ViewWithOverlay(backgroundView string, termWidth, termHeight int, theme StyleTheme) string {
	if !m.visible {
		return backgroundView
	}
	return placeOver(backgroundView, m.View(theme), termWidth, termHeight)
}

// placeOver centers overlay on screen. Every background line but the first
// (the header bar) is blanked.
func placeOver(backgroundView, overlay string, termWidth, termHeight int) string {
	bgLines := strings.Split(backgroundView, "\n")
	for i := range bgLines {
		if i == 0 {
			continue
		}
		bgLines[i] = strings.Repeat(" ", termWidth)
	}

	modalLines := strings.Split(overlay, "\n")
	modalWidth := lipgloss.Width(overlay)

	startY := max(0, (termHeight-len(modalLines))/2)
	startX := max(0, (termWidth-modalWidth)/2)

	result := make([]string, max(len(bgLines), startY+len(modalLines)))
	copy(result, bgLines)

	padding := strings.Repeat(" ", startX)
	for i, modalLine := range modalLines {
		result[startY+i] = padding + modalLine
	}

	return strings.Join(result, "\n")
}
