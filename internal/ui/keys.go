package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the main view bindings. Single-letter list keys only fire
// while the list has focus so they never eat typed text.
type keyMap struct {
	Quit      key.Binding
	QuitList  key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Submit    key.Binding
	Press     key.Binding
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Open      key.Binding
	Refresh   key.Binding
	Yank      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		QuitList:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "check")),
		Press:     key.NewBinding(key.WithKeys("enter", " ")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j/k", "move")),
		Down:      key.NewBinding(key.WithKeys("j", "down")),
		Top:       key.NewBinding(key.WithKeys("g", "home")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Yank:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),
	}
}

// formHelp is shown while a form element has focus
type formHelp struct{ k keyMap }

func (h formHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Submit, h.k.NextFocus, h.k.PrevFocus, h.k.Quit}
}

func (h formHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

// listHelp is shown while the list has focus
type listHelp struct{ k keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Open, h.k.Yank, h.k.Refresh, h.k.NextFocus, h.k.QuitList}
}

func (h listHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type readerKeyMap struct {
	Close key.Binding
}

func defaultReaderKeys() readerKeyMap {
	return readerKeyMap{
		Close: key.NewBinding(key.WithKeys("esc", "q")),
	}
}
