package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nickpending/newscheck/internal/news"
)

// RenderResult draws the verdict panel for the last classification.
// It returns "" until a submission has succeeded.
func RenderResult(item *news.Item, width int, theme StyleTheme) string {
	if item == nil {
		return ""
	}

	v := item.Verdict()
	headline := theme.RealStyle()
	border := theme.Green
	if v.Fake {
		headline = theme.FakeStyle()
		border = theme.Red
	}

	body := headline.Render(v.Icon+"  "+v.Headline) + "\n" + theme.TextStyle().Render(v.Detail)

	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(max(width-2, 20)).
		Render(body)
}
