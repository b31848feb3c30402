package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	submitIdleLabel    = "🔍 Check News"
	submitLoadingLabel = "Checking..."
	contentHeight      = 5
)

// Form holds the two text fields and the submit control.
// busy is the in-flight flag: while set the control is disabled and shows the
// loading indicator instead of its idle label.
type Form struct {
	title   textinput.Model
	content textarea.Model
	spinner spinner.Model
	busy    bool
	width   int
}

// NewForm creates an empty, idle form
func NewForm() Form {
	ti := textinput.New()
	ti.Placeholder = "Headline"
	ti.CharLimit = 0
	ti.Prompt = ""
	ti.Width = 60

	ta := textarea.New()
	ta.Placeholder = "Paste the article text here..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(contentHeight)
	ta.SetWidth(60)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Form{
		title:   ti,
		content: ta,
		spinner: sp,
		width:   64,
	}
}

// SetWidth resizes the inputs to the terminal width
func (f *Form) SetWidth(width int) {
	inner := width - 6 // border + padding
	if inner < 20 {
		inner = 20
	}
	f.width = width
	f.title.Width = inner
	f.content.SetWidth(inner)
}

// Values returns the raw field contents
func (f Form) Values() (string, string) {
	return f.title.Value(), f.content.Value()
}

// SetValues replaces the field contents
func (f *Form) SetValues(title, content string) {
	f.title.SetValue(title)
	f.content.SetValue(content)
}

// Clear empties both fields
func (f *Form) Clear() {
	f.title.Reset()
	f.content.Reset()
}

// Busy reports whether a submission is in flight
func (f Form) Busy() bool {
	return f.busy
}

// SetBusy toggles the loading state; entering it starts the spinner
func (f *Form) SetBusy(busy bool) tea.Cmd {
	f.busy = busy
	if busy {
		return f.spinner.Tick
	}
	return nil
}

// FocusField focuses the title or content field and blurs the other; any other
// area leaves both blurred
func (f *Form) FocusField(field focusArea) tea.Cmd {
	f.title.Blur()
	f.content.Blur()
	switch field {
	case focusTitle:
		return f.title.Focus()
	case focusContent:
		return f.content.Focus()
	}
	return nil
}

// UpdateField forwards msg to the focused text field
func (f Form) UpdateField(field focusArea, msg tea.Msg) (Form, tea.Cmd) {
	var cmd tea.Cmd
	switch field {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
	case focusContent:
		f.content, cmd = f.content.Update(msg)
	}
	return f, cmd
}

// UpdateSpinner advances the loading indicator while busy
func (f Form) UpdateSpinner(msg spinner.TickMsg) (Form, tea.Cmd) {
	if !f.busy {
		return f, nil
	}
	var cmd tea.Cmd
	f.spinner, cmd = f.spinner.Update(msg)
	return f, cmd
}

// SubmitLabel is the text currently shown on the submit control
func (f Form) SubmitLabel() string {
	if f.busy {
		return f.spinner.View() + " " + submitLoadingLabel
	}
	return submitIdleLabel
}

// View renders the form with the focused element highlighted
func (f Form) View(theme StyleTheme, focus focusArea) string {
	label := theme.LabelStyle()

	title := theme.InputBorderStyle(focus == focusTitle).
		Width(f.width - 2).
		Render(f.title.View())
	content := theme.InputBorderStyle(focus == focusContent).
		Width(f.width - 2).
		Render(f.content.View())

	return strings.Join([]string{
		label.Render("News Title"),
		title,
		label.Render("News Content"),
		content,
		f.submitView(theme, focus == focusSubmit),
	}, "\n")
}

func (f Form) submitView(theme StyleTheme, focused bool) string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder())

	switch {
	case f.busy:
		// Disabled while in flight
		style = style.
			BorderForeground(theme.DarkGray).
			Foreground(theme.Orange)
	case focused:
		style = style.
			BorderForeground(theme.Cyan).
			Foreground(theme.Cyan).
			Bold(true)
	default:
		style = style.
			BorderForeground(theme.DarkGray).
			Foreground(theme.White)
	}
	return style.Render(f.SubmitLabel())
}
