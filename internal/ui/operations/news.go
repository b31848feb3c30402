package operations

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nickpending/newscheck/internal/news"
)

// NewsClient is the part of the API client the TUI needs
type NewsClient interface {
	ListNews(ctx context.Context) ([]news.Item, error)
	CheckNews(ctx context.Context, sub news.Submission) (news.Item, error)
}

// NewsLoadedMsg carries the collection in server order, or the failure
type NewsLoadedMsg struct {
	Seq   int // Matches the seq passed to FetchNews
	Items []news.Item
	Err   error
}

// NewsCheckedMsg carries the classification of a submission, or the failure
type NewsCheckedMsg struct {
	Submission news.Submission
	Item       news.Item
	Err        error
}

// FetchNews loads the full collection. seq is echoed back so the caller can
// tell which load a result belongs to.
func FetchNews(client NewsClient, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := client.ListNews(context.Background())
		return NewsLoadedMsg{
			Seq:   seq,
			Items: items,
			Err:   err,
		}
	}
}

// CheckNews submits content for classification
func CheckNews(client NewsClient, sub news.Submission) tea.Cmd {
	return func() tea.Msg {
		item, err := client.CheckNews(context.Background(), sub)
		return NewsCheckedMsg{
			Submission: sub,
			Item:       item,
			Err:        err,
		}
	}
}
