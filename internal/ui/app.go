package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/placeholder"
	"github.com/taskdeck/taskdeck/internal/prefs"
	"github.com/taskdeck/taskdeck/internal/store"
)

// View represents the current active view.
type View int

const (
	ViewHome View = iota
	ViewTasks
)

// inputMode tells Update where keystrokes should go.
type inputMode int

const (
	modeNormal inputMode = iota
	modeForm
	modeSort
	modeSearch
	modeDate
	modeTime
)

const (
	defaultPageSize = 10
	uiTick          = time.Second
	statusLifetime  = 4 * time.Second
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    placeholder.TodoFetcher
	Store     *store.Store
	PageSize  int
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    placeholder.TodoFetcher
	store     *store.Store
	prefsPath string
	pageSize  int

	// UI state
	keys        keyMap
	theme       Theme
	spin        spinner.Model
	currentView View
	mode        inputMode
	showHelp    bool
	width       int
	height      int
	ready       bool

	// Data state
	snapshot store.Snapshot

	// Tasks view state
	selected int // index into the projected list
	page     int

	// Modal state
	form      formState
	sortIndex int
	filter    filterState

	// Transient status line
	status        string
	statusIsError bool
	statusExpires time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themes[0].Name
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Warning))),
	)

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		prefsPath:   prefsPath,
		pageSize:    pageSize,
		keys:        defaultKeyMap(),
		theme:       theme,
		spin:        spin,
		currentView: ViewHome,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(),
		m.spin.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initFormInputs()
			m.initFilterInput()
		}
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		if m.status != "" && time.Now().After(m.statusExpires) {
			m.status = ""
		}
		cmds = append(cmds, tickCmd())
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case snapshotMsg:
		m.snapshot = store.Snapshot(msg)
		m.clampSelection()
		return m, nil

	case importResultMsg:
		m.setImportStatus(msg)
		return m, fetchSnapshotCmd(m.store)
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

	switch m.mode {
	case modeForm:
		return m.renderForm()
	case modeSort:
		return m.renderSortSheet()
	case modeSearch, modeDate, modeTime:
		return m.renderFilterPrompt()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	switch m.currentView {
	case ViewHome:
		b.WriteString(m.renderHome())
	case ViewTasks:
		b.WriteString(m.renderTasks())
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.handleFormKey(msg)
	case modeSort:
		return m.handleSortKey(msg)
	case modeSearch, modeDate, modeTime:
		return m.handleFilterKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.currentView == ViewHome {
			m.currentView = ViewTasks
		} else {
			m.currentView = ViewHome
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewHome):
		m.currentView = ViewHome
		return m, nil

	case key.Matches(msg, m.keys.ViewTasks):
		m.currentView = ViewTasks
		return m, nil

	case key.Matches(msg, m.keys.Import):
		if m.snapshot.Loading {
			return m, nil
		}
		return m, tea.Batch(importCmd(m.ctx, m.store, m.client), fetchSnapshotCmd(m.store))
	}

	if m.currentView == ViewTasks {
		return m.handleTasksKey(msg)
	}
	return m, nil
}

// setImportStatus turns an import result into the transient status line.
func (m *Model) setImportStatus(msg importResultMsg) {
	switch {
	case msg.err != nil:
		m.showStatus(fmt.Sprintf("Import failed: %s", importFailureText(msg.err)), true)
	case msg.added == 0:
		m.showStatus("No new tasks to fetch; everything is already here", false)
	default:
		m.showStatus(fmt.Sprintf("Fetched %d new %s from the API", msg.added, plural(msg.added, "task", "tasks")), false)
	}
}

func importFailureText(err error) string {
	text := strings.TrimSpace(err.Error())
	if text == "" {
		return "unknown error"
	}
	return text
}

func (m *Model) showStatus(text string, isError bool) {
	m.status = text
	m.statusIsError = isError
	m.statusExpires = time.Now().Add(statusLifetime)
}

// savePrefs persists the current theme and sort selection.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.theme.Name,
		Sort:  string(m.snapshot.Sort),
	})
}

// Messages

type tickMsg time.Time

type snapshotMsg store.Snapshot

type importResultMsg struct {
	added int
	err   error
}

// Commands

func tickCmd() tea.Cmd {
	return tea.Tick(uiTick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(s.Snapshot())
	}
}

// importCmd runs the import off the update loop; the result re-enters it as
// an ordinary message.
func importCmd(ctx context.Context, s *store.Store, fetcher placeholder.TodoFetcher) tea.Cmd {
	return func() tea.Msg {
		added, err := s.Import(ctx, fetcher)
		return importResultMsg{added: len(added), err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a task store")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refreshSnapshot re-reads the store synchronously after a mutation so the
// next render reflects it without waiting for a tick.
func (m *Model) refreshSnapshot() {
	m.snapshot = m.store.Snapshot()
	m.clampSelection()
}
