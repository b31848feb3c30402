package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nickpending/newscheck/internal/api"
	"github.com/nickpending/newscheck/internal/config"
	"github.com/nickpending/newscheck/internal/format"
	"github.com/nickpending/newscheck/internal/logging"
	"github.com/nickpending/newscheck/internal/news"
	"github.com/nickpending/newscheck/internal/ui/operations"
)

// focusArea is the element receiving key input outside modals
type focusArea int

const (
	focusTitle focusArea = iota
	focusContent
	focusSubmit
	focusList
	focusCount
)

// Model represents the application state for the TUI
type Model struct {
	client operations.NewsClient
	log    *logging.Logger
	theme  StyleTheme
	keys   keyMap
	help   help.Model

	form   Form
	focus  focusArea
	result *news.Item // Last successful classification, nil until one succeeds

	// List state; items are kept in display order
	items       []news.Item
	cursor      int
	listLoading bool
	listLoaded  bool
	listErr     error
	loadSeq     int // Seq of the newest load issued; results from older loads are dropped
	// Set when a list load was started by a successful submit; the form stays
	// busy until that load lands
	refreshAfterSubmit bool

	alert  AlertModal
	reader ReaderModal

	width  int
	height int

	statusMessage   string        // Temporary status message to display
	refreshInterval time.Duration // Interval for auto-refresh (0 = disabled)
}

// clearStatusMsg is sent to clear the status message after a delay
type clearStatusMsg struct{}

// autoRefreshMsg is sent by the timer to trigger automatic refresh
type autoRefreshMsg struct{}

// NewModel creates a Model talking to client. cfg may be nil for defaults.
func NewModel(client operations.NewsClient, cfg *config.Config, log *logging.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Discard()
	}
	theme := ThemeByName(cfg.TUI.Theme)

	m := Model{
		client:          client,
		log:             log,
		theme:           theme,
		keys:            defaultKeys(),
		help:            help.New(),
		form:            NewForm(),
		alert:           NewAlertModal(news.SubmitFailedAlert, theme),
		reader:          NewReaderModal(theme),
		listLoading:     true,
		loadSeq:         1,
		refreshInterval: time.Duration(cfg.GetRefreshInterval()) * time.Second,
	}
	m.form.FocusField(focusTitle)
	return m
}

// Init loads the list and starts the cursor blink and refresh timer
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		operations.FetchNews(m.client, m.loadSeq),
		textinput.Blink,
	}
	if m.refreshInterval > 0 {
		cmds = append(cmds, autoRefreshCmd(m.refreshInterval))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetWidth(msg.Width)
		m.alert.SetSize(msg.Width, msg.Height)
		m.reader.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.UpdateSpinner(msg)
		return m, cmd

	case operations.NewsCheckedMsg:
		return m.handleChecked(msg)

	case operations.NewsLoadedMsg:
		return m.handleLoaded(msg)

	case operations.ItemYankedMsg:
		if msg.Success {
			m.statusMessage = fmt.Sprintf("Copied \"%s\"", format.SanitizeTerminal(msg.Title, true))
		} else {
			m.log.WithError(msg.Error).Warn("clipboard write failed")
			m.statusMessage = fmt.Sprintf("Copy failed: %v", msg.Error)
		}
		return m, clearStatusAfterDelay(3 * time.Second)

	case autoRefreshMsg:
		var cmds []tea.Cmd
		// Never overlap a submission or another load
		if !m.form.Busy() && !m.listLoading {
			cmds = append(cmds, m.startLoad())
		}
		cmds = append(cmds, autoRefreshCmd(m.refreshInterval))
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and anything else the text fields want
	var cmd tea.Cmd
	m.form, cmd = m.form.UpdateField(m.focus, msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// The alert blocks everything until dismissed
	if m.alert.IsVisible() {
		var cmd tea.Cmd
		m.alert, cmd = m.alert.Update(msg)
		return m, cmd
	}

	if m.reader.IsVisible() {
		if key.Matches(msg, m.keys.Yank) {
			return m, operations.YankItem(m.reader.Item())
		}
		var cmd tea.Cmd
		m.reader, cmd = m.reader.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	switch m.focus {
	case focusTitle:
		if msg.Type == tea.KeyEnter {
			cmd := m.setFocus(focusContent)
			return m, cmd
		}
	case focusSubmit:
		if key.Matches(msg, m.keys.Press) {
			return m.submit()
		}
		return m, nil
	case focusList:
		return m.handleListKey(msg)
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.UpdateField(m.focus, msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitList):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(m.items)-1, 0)
	case key.Matches(msg, m.keys.Open):
		if item, ok := m.selected(); ok {
			m.reader.Open(item)
		}
	case key.Matches(msg, m.keys.Yank):
		if item, ok := m.selected(); ok {
			return m, operations.YankItem(item)
		}
	case key.Matches(msg, m.keys.Refresh):
		if !m.listLoading {
			cmd := m.startLoad()
			return m, cmd
		}
	}
	return m, nil
}

// submit starts a classification unless one is already in flight
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.form.Busy() {
		return m, nil
	}
	sub := news.NewSubmission(m.form.Values())
	m.log.Service().
		WithField("title_len", len(sub.Title)).
		WithField("content_len", len(sub.Content)).
		Debug("submitting news for classification")

	busyCmd := m.form.SetBusy(true)
	return m, tea.Batch(busyCmd, operations.CheckNews(m.client, sub))
}

func (m Model) handleChecked(msg operations.NewsCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.form.SetBusy(false)
		m.log.WithError(msg.Err).
			WithField("kind", api.Kind(msg.Err)).
			Error("error checking news")
		m.alert.Show()
		return m, nil
	}

	item := msg.Item
	m.result = &item
	m.form.Clear()
	m.log.Service().WithField("fake", item.Fake).Info("news checked")

	// The refresh follows the submission; busy is released when it lands
	m.refreshAfterSubmit = true
	cmd := m.startLoad()
	return m, cmd
}

func (m Model) handleLoaded(msg operations.NewsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.loadSeq {
		// A newer load is in flight and will replace this one
		return m, nil
	}
	m.listLoading = false
	m.listLoaded = true
	if m.refreshAfterSubmit {
		m.refreshAfterSubmit = false
		m.form.SetBusy(false)
	}

	if msg.Err != nil {
		m.log.WithError(msg.Err).
			WithField("kind", api.Kind(msg.Err)).
			Error("error loading news")
		m.listErr = msg.Err
		m.items = nil
		m.cursor = 0
		return m, nil
	}

	m.listErr = nil
	m.items = news.DisplayOrder(msg.Items)
	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
	return m, nil
}

// startLoad issues a list load that supersedes any load still in flight
func (m *Model) startLoad() tea.Cmd {
	m.loadSeq++
	m.listLoading = true
	return operations.FetchNews(m.client, m.loadSeq)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	return m.form.FocusField(f)
}

func (m Model) selected() (news.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return news.Item{}, false
	}
	return m.items[m.cursor], true
}

// View renders the header, form, verdict, list and footer, with any open modal on top
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	form := m.form.View(m.theme, m.focus)
	result := RenderResult(m.result, m.width, m.theme)
	listTitle := m.theme.LabelStyle().Render(fmt.Sprintf("Recent Checks (%d)", len(m.items)))
	footer := m.renderFooter()

	top := []string{header, form}
	if result != "" {
		top = append(top, result)
	}
	top = append(top, "", listTitle)
	topView := strings.Join(top, "\n")

	listHeight := m.height - lipgloss.Height(topView) - lipgloss.Height(footer) - 1
	list := RenderNewsList(listState{
		items:   m.items,
		cursor:  m.cursor,
		loading: m.listLoading,
		loaded:  m.listLoaded,
		err:     m.listErr,
		focused: m.focus == focusList,
	}, m.width, max(listHeight, 1), m.theme)

	// Pin the footer to the bottom row
	gap := max(listHeight-lipgloss.Height(list), 0)
	base := topView + "\n" + list + strings.Repeat("\n", gap+1) + footer

	if m.alert.IsVisible() {
		return m.alert.ViewWithOverlay(base, m.width, m.height, m.theme)
	}
	if m.reader.IsVisible() {
		return m.reader.ViewWithOverlay(base, m.width, m.height, m.theme)
	}
	return base
}

func (m Model) renderHeader() string {
	title := " NEWSCHECK"
	state := "idle"
	switch {
	case m.form.Busy():
		state = "checking"
	case m.listLoading:
		state = "loading"
	}
	right := fmt.Sprintf("%s  ◆ %s ", state, time.Now().Format("15:04"))

	spacing := "  "
	if avail := m.width - lipgloss.Width(title) - lipgloss.Width(right); avail > 0 {
		spacing = strings.Repeat(" ", avail)
	}
	return RenderWithGradientBackground(title+spacing+right, m.width, "#00D9FF", "#9F4DFF")
}

func (m Model) renderFooter() string {
	if m.statusMessage != "" {
		return m.theme.LoadingStyle().Render(m.statusMessage)
	}
	if m.focus == focusList {
		return m.help.View(listHelp{m.keys})
	}
	return m.help.View(formHelp{m.keys})
}

// autoRefreshCmd returns a command that triggers auto-refresh after the specified interval
func autoRefreshCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return autoRefreshMsg{}
	})
}

// clearStatusAfterDelay returns a command that clears the status message after a delay
func clearStatusAfterDelay(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
