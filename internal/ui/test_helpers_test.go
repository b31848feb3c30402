package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nickpending/newscheck/internal/news"
	"github.com/nickpending/newscheck/internal/ui/operations"
)

// fakeClient records calls made by the model
type fakeClient struct {
	items     []news.Item
	listErr   error
	checked   news.Item
	checkErr  error
	submitted []news.Submission
	listCalls int
}

func (f *fakeClient) ListNews(ctx context.Context) ([]news.Item, error) {
	f.listCalls++
	return f.items, f.listErr
}

func (f *fakeClient) CheckNews(ctx context.Context, sub news.Submission) (news.Item, error) {
	f.submitted = append(f.submitted, sub)
	return f.checked, f.checkErr
}

// testModel creates a sized Model for testing
func testModel(client operations.NewsClient) Model {
	m := NewModel(client, nil, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

// update feeds msg through the model. A list load built by hand (Seq 0) is
// treated as the result of the newest load.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	if loaded, ok := msg.(operations.NewsLoadedMsg); ok && loaded.Seq == 0 {
		loaded.Seq = m.loadSeq
		msg = loaded
	}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// runCmd executes cmd and any batched commands, returning every message produced
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// findMsg returns the first message of type T
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var errTest = errors.New("test failure")
