package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/nickpending/newscheck/internal/format"
	"github.com/nickpending/newscheck/internal/news"
)

// ReaderModal shows one item's full content rendered as markdown
type ReaderModal struct {
	Modal
	item     news.Item
	viewport viewport.Model
	theme    StyleTheme
	keys     readerKeyMap
}

// NewReaderModal creates a hidden reader
func NewReaderModal(theme StyleTheme) ReaderModal {
	return ReaderModal{
		Modal:    NewModal("", 80, 24),
		viewport: viewport.New(76, 18),
		theme:    theme,
		keys:     defaultReaderKeys(),
	}
}

// SetSize fits the reader to the terminal, leaving the header and footer visible
func (r *ReaderModal) SetSize(width, height int) {
	w := max(width*85/100, 40)
	h := max(height-8, 10)
	r.Modal.width = w
	r.Modal.height = h
	r.viewport.Width = w - 6
	r.viewport.Height = max(h-6, 3)
	if r.visible {
		r.render()
	}
}

// Open shows item in the reader
func (r *ReaderModal) Open(item news.Item) {
	r.item = item
	r.title = format.SanitizeTerminal(item.Title, true)
	r.Show()
	r.render()
	r.viewport.GotoTop()
}

// Item returns the item being read
func (r ReaderModal) Item() news.Item {
	return r.item
}

func (r *ReaderModal) render() {
	v := r.item.Verdict()
	md := fmt.Sprintf("%s **%s**\n\n%s\n\n---\n\n%s\n",
		v.Icon, v.Headline, v.Detail, format.SanitizeTerminal(r.item.Content, false))

	out, err := renderMarkdown(md, r.viewport.Width, r.theme)
	if err != nil {
		out = wrapText(format.SanitizeTerminal(r.item.Content, false), r.viewport.Width)
	}
	r.viewport.SetContent(strings.TrimRight(out, "\n"))
}

// Update scrolls the content and closes on esc or q
func (r ReaderModal) Update(msg tea.Msg) (ReaderModal, tea.Cmd) {
	if !r.visible {
		return r, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, r.keys.Close) {
		r.Hide()
		return r, nil
	}
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// View draws the scrolled content with a position line
func (r ReaderModal) View(theme StyleTheme) string {
	footer := theme.MutedStyle().Render(fmt.Sprintf("%3.f%%  [j/k] scroll  [y] yank  [esc] close",
		r.viewport.ScrollPercent()*100))
	m := r.Modal
	m.SetContent(r.viewport.View() + "\n\n" + footer)
	return m.View(theme)
}

// ViewWithOverlay draws the reader over the main view
func (r ReaderModal) ViewWithOverlay(background string, width, height int, theme StyleTheme) string {
	if !r.visible {
		return background
	}
	return placeOver(background, r.View(theme), width, height)
}

// renderMarkdown renders md with the theme's glamour style wrapped at width
func renderMarkdown(md string, width int, theme StyleTheme) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(theme.ToGlamourStyle()),
		glamour.WithWordWrap(max(width, 20)),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
