package operations

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nickpending/newscheck/internal/news"
)

// ItemYankedMsg reports the result of copying an item to the clipboard
type ItemYankedMsg struct {
	Title   string
	Success bool
	Error   error
}

var (
	defaultWriteClipboard = clipboard.WriteAll
	// writeClipboard is swapped out in tests
	writeClipboard = defaultWriteClipboard
)

// YankItem copies the item's title, verdict and full content to the system clipboard
func YankItem(item news.Item) tea.Cmd {
	return func() tea.Msg {
		text := fmt.Sprintf("%s\n%s\n\n%s", item.Title, item.Verdict().Badge, item.Content)
		err := writeClipboard(text)
		return ItemYankedMsg{
			Title:   item.Title,
			Success: err == nil,
			Error:   err,
		}
	}
}
