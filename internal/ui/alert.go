package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AlertModal is the blocking notice shown when a submission fails.
// While visible it swallows every key except the ones that dismiss it.
type AlertModal struct {
	Modal
}

// NewAlertModal creates a hidden alert carrying message
func NewAlertModal(message string, theme StyleTheme) AlertModal {
	m := NewModal("CHECK FAILED", 56, 0)
	m.borderColor = theme.Red
	m.SetContent(message + "\n\n" + theme.MutedStyle().Render("[enter] OK"))
	return AlertModal{Modal: m}
}

// SetSize keeps the alert inside narrow terminals
func (a *AlertModal) SetSize(width, height int) {
	w := 56
	if w > width-6 {
		w = width - 6
	}
	if w < 20 {
		w = 20
	}
	a.width = w
}

// Update dismisses the alert on enter, esc or space
func (a AlertModal) Update(msg tea.Msg) (AlertModal, tea.Cmd) {
	if !a.visible {
		return a, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", " ":
			a.Hide()
		}
	}
	return a, nil
}
