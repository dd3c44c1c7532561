package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/five82/memopad/internal/memo"
	"github.com/five82/memopad/internal/prefs"
	"github.com/five82/memopad/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewList View = iota
	ViewEditor
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Prefs     prefs.Prefs
	PrefsPath string
	StorePath string
	Logger    *slog.Logger

	// StartupErr is shown in the root alert once the first load finishes.
	StartupErr error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      *state.Store
	prefs      prefs.Prefs
	prefsPath  string
	storePath  string
	logger     *slog.Logger
	startupErr error

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snap state.State

	// List state
	selectedRow int

	// Editor state. editingID is nil while composing a new memo.
	draft      textarea.Model
	draftColor memo.Color
	editingID  *uuid.UUID
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	userPrefs := opts.Prefs
	if strings.TrimSpace(userPrefs.Theme) == "" {
		userPrefs.Theme = GetTheme("").Name
	}

	var snap state.State
	if opts.Store != nil {
		snap = opts.Store.Snapshot()
	}

	return Model{
		ctx:         ctx,
		store:       opts.Store,
		prefs:       userPrefs,
		prefsPath:   prefsPath,
		storePath:   opts.StorePath,
		logger:      logger,
		startupErr:  opts.StartupErr,
		theme:       GetTheme(userPrefs.Theme),
		keys:        DefaultKeyMap(),
		help:        help.New(),
		currentView: ViewList,
		snap:        snap,
		draft:       newDraft(),
		draftColor:  memo.DefaultColor,
	}
}

func newDraft() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Cursor.SetMode(cursor.CursorStatic)
	return ta
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	actions := []state.Action{state.OnAppear{}}
	if m.startupErr != nil {
		actions = append(actions, state.ReportError{Err: m.startupErr})
	}
	return m.dispatch(actions...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.resizeDraft()
		return m, nil

	case snapshotMsg:
		return m.handleSnapshot(state.State(msg))
	}

	if m.currentView == ViewEditor {
		var cmd tea.Cmd
		m.draft, cmd = m.draft.Update(msg)
		return m, cmd
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

	if m.snap.Alert != nil {
		return m.renderDialog(m.snap.Alert.Title, m.snap.Alert.Message, alertColor(m.theme, m.snap.Alert), "enter  Dismiss")
	}

	if m.currentView == ViewEditor {
		if c := m.snap.Editor.Confirm; c != nil {
			return m.renderDialog(c.Title, c.Message, m.theme.Accent, "y  Save    n  Cancel")
		}
		if a := m.snap.Editor.Alert; a != nil {
			return m.renderDialog(a.Title, a.Message, alertColor(m.theme, a), "enter  OK")
		}
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.snap.Alert != nil {
		if msg.String() == "enter" || msg.String() == "esc" {
			return m, m.dispatch(state.DismissError{})
		}
		return m, nil
	}

	switch m.currentView {
	case ViewEditor:
		return m.handleEditorKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleSnapshot applies a fresh state from the store.
func (m Model) handleSnapshot(snap state.State) (tea.Model, tea.Cmd) {
	m.snap = snap
	m.clampSelection()

	if key := snap.SortKey.String(); key != m.prefs.SortKey {
		m.prefs.SortKey = key
		m.savePrefs()
	}

	if m.currentView == ViewEditor && snap.Editor.IsCompleted {
		m.closeEditor()
		return m, m.dispatch(state.EditorDisappeared{}, state.Reload{})
	}
	return m, nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.prefs.Theme = m.theme.Name
	m.savePrefs()
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	switch m.currentView {
	case ViewEditor:
		b.WriteString(m.renderEditor())
	default:
		b.WriteString(m.renderList())
	}

	return b.String()
}

// Messages

type snapshotMsg state.State

// Commands

// dispatch runs actions through the store as one batch so their follow-ups
// are processed before the resulting snapshot is delivered.
func (m Model) dispatch(actions ...state.Action) tea.Cmd {
	if m.store == nil || len(actions) == 0 {
		return nil
	}
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		return snapshotMsg(store.Dispatch(ctx, actions...))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
