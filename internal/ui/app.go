package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/flow/internal/config"
	"github.com/five82/flow/internal/prefs"
	"github.com/five82/flow/internal/state"
)

const defaultRefresh = 100 * time.Millisecond

// Options configures the UI.
type Options struct {
	Context context.Context
	Inbox   *state.Inbox
	Config  config.Config
	// Backfill is shown before anything arrives through the inbox.
	Backfill  []string
	ThemeName string
	TabName   string
	PrefsPath string
	Refresh   time.Duration
	Logger    *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	inbox     *state.Inbox
	cfg       config.Config
	prefsPath string
	refresh   time.Duration
	logger    *slog.Logger

	theme  Theme
	styles Styles
	keys   keyMap
	help   help.Model
	input  textinput.Model

	panes  []*pane
	active int

	width    int
	height   int
	ready    bool
	showHelp bool
	prompt   bool

	// lines that arrived before the first window size
	pending []string
	status  state.Batch
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	refresh := opts.Refresh
	if refresh <= 0 {
		refresh = defaultRefresh
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	tabs := opts.Config.Tabs
	if len(tabs) == 0 {
		tabs = config.Default().Tabs
	}

	theme := GetTheme(opts.ThemeName)
	styles := theme.Styles()

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "search"

	m := Model{
		ctx:       ctx,
		inbox:     opts.Inbox,
		cfg:       opts.Config,
		prefsPath: prefsPath,
		refresh:   refresh,
		logger:    logger,
		theme:     theme,
		styles:    styles,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		pending:   sanitizeLines(opts.Backfill),
	}
	for i, tab := range tabs {
		m.panes = append(m.panes, newPane(tab, 0, 1, styles))
		if tab.Name == opts.TabName {
			m.active = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.refresh), watchContextCmd(m.ctx))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = max(msg.Width-m.styles.Footer.GetHorizontalFrameSize(), 0)
		m.input.Width = m.inputWidth()
		for _, p := range m.panes {
			p.resize(m.width, m.bodyRows())
		}
		if !m.ready {
			m.ready = true
			m.ingest(m.pending)
			m.pending = nil
		}
		return m, nil

	case tickMsg:
		m.drain()
		return m, tickCmd(m.refresh)

	case contextDoneMsg:
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.current().render(),
		m.renderFooter(),
	)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.prompt {
		return m.handlePromptKey(msg)
	}

	p := m.current()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.switchTab(-1)
	case key.Matches(msg, m.keys.Up):
		p.scroll(1)
	case key.Matches(msg, m.keys.Down):
		p.scroll(-1)
	case key.Matches(msg, m.keys.PageUp):
		p.scroll(m.bodyRows())
	case key.Matches(msg, m.keys.PageDown):
		p.scroll(-m.bodyRows())
	case key.Matches(msg, m.keys.Top):
		p.top()
	case key.Matches(msg, m.keys.Follow):
		p.follow()
	case key.Matches(msg, m.keys.Search):
		m.prompt = true
		m.input.SetValue(p.query)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.NextMatch):
		p.nextMatch()
	case key.Matches(msg, m.keys.PrevMatch):
		p.previousMatch()
	case key.Matches(msg, m.keys.Pin):
		m.pinQuery()
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.current()
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.prompt = false
		m.input.Blur()
		m.input.SetValue("")
		p.setQuery("")
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		m.prompt = false
		m.input.Blur()
		if p.query != "" {
			p.mode = searchNavigating
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != p.query {
		p.setQuery(value)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if msg.Action != tea.MouseActionPress {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.current().scroll(1)
	case tea.MouseButtonWheelDown:
		m.current().scroll(-1)
	}
	return m
}

// drain moves everything the follower queued into the panes.
func (m *Model) drain() {
	if m.inbox == nil {
		return
	}
	batch := m.inbox.Drain()
	m.status = batch
	if batch.Reset {
		m.logger.Info("log source restarted, clearing panes")
		for _, p := range m.panes {
			p.clear()
		}
		m.pending = nil
	}
	if batch.Dropped > 0 {
		m.logger.Warn("inbox overflow", "dropped", batch.Dropped)
	}
	lines := sanitizeLines(batch.Lines)
	if !m.ready {
		m.pending = append(m.pending, lines...)
		return
	}
	m.ingest(lines)
}

func (m *Model) ingest(lines []string) {
	if len(lines) == 0 {
		return
	}
	for _, p := range m.panes {
		p.appendLines(lines, m.cfg.MaxLines)
	}
}

func (m *Model) switchTab(delta int) {
	n := len(m.panes)
	m.activate(((m.active+delta)%n + n) % n)
}

// activate shows the pane at index, carrying the prompt's query over.
func (m *Model) activate(index int) {
	m.active = index
	p := m.current()
	if p.query != m.input.Value() {
		p.setQuery(m.input.Value())
	}
	m.savePrefs()
}

// pinQuery opens a tab holding only the lines that match the active query.
func (m *Model) pinQuery() {
	p := m.current()
	if p.query == "" {
		return
	}
	m.panes = append(m.panes, p.pin(m.bodyRows()))
	m.logger.Debug("pinned query as tab", "query", p.query, "tabs", len(m.panes))
	m.activate(len(m.panes) - 1)
}

func (m *Model) setTheme(theme Theme) {
	m.theme = theme
	m.styles = theme.Styles()
	for _, p := range m.panes {
		p.repaint(m.styles)
	}
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, Tab: m.current().tab.Name}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

func (m Model) current() *pane {
	return m.panes[m.active]
}

// bodyRows is the height left for log rows after the header and footer.
func (m Model) bodyRows() int {
	return max(m.height-2, 1)
}

// Messages

type tickMsg time.Time

type contextDoneMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return contextDoneMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
