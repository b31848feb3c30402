package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nickpending/newscheck/internal/format"
	"github.com/nickpending/newscheck/internal/news"
)

// listState is what the list area needs to draw itself
type listState struct {
	items   []news.Item // display order, most recent first
	cursor  int
	loading bool
	loaded  bool // at least one load finished
	err     error
	focused bool
}

// RenderNewsList draws the list area into at most height lines
func RenderNewsList(s listState, width, height int, theme StyleTheme) string {
	switch {
	case s.err != nil:
		return theme.ErrorStyle().Render(news.ListErrorMessage)
	case !s.loaded:
		return theme.LoadingStyle().Render("Loading news...")
	case len(s.items) == 0:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.MutedStyle().Render(news.EmptyListMessage))
	}

	blocks := make([]string, len(s.items))
	for i, item := range s.items {
		blocks[i] = renderNewsBlock(item, i == s.cursor && s.focused, width, theme)
	}

	// Scroll so the cursor block is visible
	start := 0
	if height > 0 {
		used := 0
		for i := s.cursor; i >= 0; i-- {
			h := lipgloss.Height(blocks[i]) + 1
			if used+h > height && i < s.cursor {
				break
			}
			used += h
			start = i
		}
	}

	var lines []string
	for _, block := range blocks[start:] {
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func renderNewsBlock(item news.Item, selected bool, width int, theme StyleTheme) string {
	v := item.Verdict()
	badge := theme.RealStyle().Render(v.Badge)
	if v.Fake {
		badge = theme.FakeStyle().Render(v.Badge)
	}

	prefix := "  "
	titleStyle := theme.TextStyle().Bold(true)
	if selected {
		prefix = theme.SelectedStyle().Render("▸ ")
		titleStyle = theme.SelectedStyle()
	}

	title := titleStyle.Render(format.SanitizeTerminal(item.Title, true))
	preview := wrapText(format.SanitizeTerminal(item.Preview(), true), max(width-4, 10))

	return prefix + title + "  " + badge + "\n" +
		theme.MutedStyle().Render(indent(preview, "  "))
}
