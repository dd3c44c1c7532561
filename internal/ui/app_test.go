package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memopad/internal/memo"
	"github.com/five82/memopad/internal/prefs"
	"github.com/five82/memopad/internal/repository"
	"github.com/five82/memopad/internal/state"
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

type failingAdds struct {
	repository.Repository
	err error
}

func (f failingAdds) Add(context.Context, memo.Memo) error { return f.err }

func newTestModel(t *testing.T, repo repository.Repository, startupErr error) (Model, string) {
	t.Helper()
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	store := state.New(repo, state.WithClock(func() time.Time { return testNow }))
	m := New(Options{
		Store:      store,
		Prefs:      prefs.Prefs{Theme: "Nightfox", SortKey: "Color"},
		PrefsPath:  prefsPath,
		StorePath:  "/tmp/memos.db",
		StartupErr: startupErr,
	})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return settle(t, m, m.Init()), prefsPath
}

// send delivers msg and runs every command it produces, feeding snapshots back.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	return settle(t, next.(Model), cmd)
}

func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = settle(t, m, c)
		}
	case snapshotMsg:
		m = send(t, m, msg)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func seeded(t *testing.T, memos ...memo.Memo) *repository.Memory {
	t.Helper()
	repo := repository.NewMemory(repository.WithMemoryClock(func() time.Time { return testNow }))
	for _, mm := range memos {
		if err := repo.Add(context.Background(), mm); err != nil {
			t.Fatalf("seed Add: %v", err)
		}
	}
	return repo
}

func TestInitLoadsAndSortsMemos(t *testing.T) {
	repo := seeded(t,
		memo.New("yellow one", memo.Yellow, testNow),
		memo.New("blue one", memo.Blue, testNow.Add(time.Minute)),
	)
	m, _ := newTestModel(t, repo, nil)

	if len(m.snap.Memos) != 2 {
		t.Fatalf("loaded %d memos, want 2", len(m.snap.Memos))
	}
	if m.snap.Memos[0].Color != memo.Blue {
		t.Fatalf("first memo color = %s, want blue (sorted by color)", m.snap.Memos[0].Color)
	}
	view := m.View()
	if !strings.Contains(view, "2 memos") || !strings.Contains(view, "blue one") {
		t.Fatalf("View() missing list content:\n%s", view)
	}
}

func TestCreateMemoFlow(t *testing.T) {
	repo := seeded(t)
	m, _ := newTestModel(t, repo, nil)

	m = send(t, m, runes("n"))
	if m.currentView != ViewEditor || m.editingID != nil {
		t.Fatalf("view = %v editing = %v, want new-memo editor", m.currentView, m.editingID)
	}

	m = send(t, m, runes("hello"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.draftColor != memo.Yellow {
		t.Fatalf("draftColor = %s, want yellow", m.draftColor)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.snap.Editor.Confirm == nil {
		t.Fatalf("expected confirm dialog after ctrl+s")
	}
	if !strings.Contains(m.View(), "Save this memo?") {
		t.Fatalf("View() does not show the confirm dialog:\n%s", m.View())
	}
	if memos, _ := repo.FindAll(context.Background()); len(memos) != 0 {
		t.Fatalf("memo written before confirmation")
	}

	m = send(t, m, runes("y"))
	if m.snap.Editor.Alert == nil || m.snap.Editor.Alert.Kind != state.AlertSuccess {
		t.Fatalf("editor alert = %+v, want success", m.snap.Editor.Alert)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentView != ViewList {
		t.Fatalf("view = %v, want list after acknowledging save", m.currentView)
	}
	if len(m.snap.Memos) != 1 {
		t.Fatalf("list has %d memos, want 1", len(m.snap.Memos))
	}
	got := m.snap.Memos[0]
	if got.Text != "hello" || got.Color != memo.Yellow || !got.Date.Equal(testNow) {
		t.Fatalf("saved memo = %+v", got)
	}
	if m.snap.Editor.IsCompleted || m.snap.Editor.Text != "" {
		t.Fatalf("editor not reset: %+v", m.snap.Editor)
	}
}

func TestEditMemoFlow(t *testing.T) {
	target := memo.New("hi", memo.Pink, testNow)
	repo := seeded(t, target)
	m, _ := newTestModel(t, repo, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.editingID == nil || *m.editingID != target.ID {
		t.Fatalf("editingID = %v, want %s", m.editingID, target.ID)
	}
	if m.draft.Value() != "hi" || m.draftColor != memo.Pink {
		t.Fatalf("draft = %q/%s, want hi/pink", m.draft.Value(), m.draftColor)
	}
	if m.snap.Selected == nil || m.snap.Selected.ID != target.ID {
		t.Fatalf("Selected = %+v, want the edited memo", m.snap.Selected)
	}

	m = send(t, m, runes("!"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if c := m.snap.Editor.Confirm; c == nil || c.Kind != state.ConfirmKindUpdate || c.ID != target.ID {
		t.Fatalf("confirm = %+v, want update for %s", c, target.ID)
	}
	m = send(t, m, runes("y"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	stored, ok, err := repo.FindOne(context.Background(), target.ID)
	if err != nil || !ok {
		t.Fatalf("FindOne = %v, %v", ok, err)
	}
	if stored.Text != "hi!" || stored.Color != memo.Pink {
		t.Fatalf("stored = %+v, want hi!/pink", stored)
	}
	if m.currentView != ViewList || len(m.snap.Memos) != 1 {
		t.Fatalf("view = %v memos = %d, want list with 1", m.currentView, len(m.snap.Memos))
	}
}

func TestCancelConfirmKeepsDraft(t *testing.T) {
	m, _ := newTestModel(t, seeded(t), nil)

	m = send(t, m, runes("n"))
	m = send(t, m, runes("draft"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = send(t, m, runes("n"))

	if m.snap.Editor.Confirm != nil {
		t.Fatalf("confirm still open after cancel")
	}
	if m.currentView != ViewEditor || m.draft.Value() != "draft" {
		t.Fatalf("view = %v draft = %q, want editor with draft", m.currentView, m.draft.Value())
	}
}

func TestEscDiscardsDraft(t *testing.T) {
	repo := seeded(t)
	m, _ := newTestModel(t, repo, nil)

	m = send(t, m, runes("n"))
	m = send(t, m, runes("throwaway"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.currentView != ViewList {
		t.Fatalf("view = %v, want list", m.currentView)
	}
	if m.snap.Editor.Text != "" || m.draft.Value() != "" {
		t.Fatalf("draft survived esc: state %q, textarea %q", m.snap.Editor.Text, m.draft.Value())
	}
	if memos, _ := repo.FindAll(context.Background()); len(memos) != 0 {
		t.Fatalf("discarded draft was written")
	}
}

func TestFailedSaveKeepsEditorOpen(t *testing.T) {
	repo := failingAdds{Repository: seeded(t), err: errors.New("disk full")}
	m, _ := newTestModel(t, repo, nil)

	m = send(t, m, runes("n"))
	m = send(t, m, runes("keep me"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m = send(t, m, runes("y"))

	a := m.snap.Editor.Alert
	if a == nil || a.Kind != state.AlertError {
		t.Fatalf("alert = %+v, want error", a)
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Fatalf("View() does not show the failure:\n%s", m.View())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.currentView != ViewEditor {
		t.Fatalf("view = %v, want editor to stay open after failure", m.currentView)
	}
	if m.snap.Editor.Text != "keep me" || m.draft.Value() != "keep me" {
		t.Fatalf("draft lost: state %q, textarea %q", m.snap.Editor.Text, m.draft.Value())
	}
}

func TestSortKeysChangeAndPersist(t *testing.T) {
	repo := seeded(t,
		memo.New("b", memo.Blue, testNow),
		memo.New("a", memo.Pink, testNow.Add(time.Second)),
	)
	m, prefsPath := newTestModel(t, repo, nil)

	m = send(t, m, runes("3"))
	if m.snap.SortKey != memo.SortByText || m.snap.Memos[0].Text != "a" {
		t.Fatalf("sort = %s first = %q, want Text/a", m.snap.SortKey, m.snap.Memos[0].Text)
	}
	saved, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Sort() != memo.SortByText {
		t.Fatalf("saved sort = %q, want Text", saved.SortKey)
	}

	m = send(t, m, runes("s"))
	if m.snap.SortKey != memo.SortByColor || m.snap.Selector.Index != 0 {
		t.Fatalf("after cycle sort = %s index = %d, want Color/0", m.snap.SortKey, m.snap.Selector.Index)
	}
}

func TestDeleteSelectedMemo(t *testing.T) {
	first := memo.New("first", memo.Blue, testNow)
	second := memo.New("second", memo.Green, testNow)
	repo := seeded(t, first, second)
	m, _ := newTestModel(t, repo, nil)

	m = send(t, m, runes("j"))
	m = send(t, m, runes("d"))

	if len(m.snap.Memos) != 1 || m.snap.Memos[0].ID != first.ID {
		t.Fatalf("memos after delete = %+v, want only %s", m.snap.Memos, first.ID)
	}
	if m.selectedRow != 0 {
		t.Fatalf("selectedRow = %d, want clamped to 0", m.selectedRow)
	}
}

func TestStartupErrorShowsAlert(t *testing.T) {
	m, _ := newTestModel(t, seeded(t), errors.New("open store: locked"))

	if m.snap.Alert == nil {
		t.Fatalf("expected startup alert")
	}
	if !strings.Contains(m.View(), "locked") {
		t.Fatalf("View() does not show the startup error:\n%s", m.View())
	}

	m = send(t, m, runes("n"))
	if m.currentView != ViewList {
		t.Fatalf("keys other than dismiss must be ignored while the alert is open")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.snap.Alert != nil {
		t.Fatalf("alert still open after enter")
	}
}

func TestThemeCyclePersists(t *testing.T) {
	m, prefsPath := newTestModel(t, seeded(t), nil)

	m = send(t, m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	saved, err := prefs.Load(prefsPath)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", saved.Theme)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t, seeded(t), nil)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m, _ := newTestModel(t, seeded(t), nil)

	m = send(t, m, runes("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = send(t, m, runes("x"))
	if m.showHelp {
		t.Fatalf("help overlay still shown")
	}
}

func TestNilStoreDispatchesNothing(t *testing.T) {
	m := New(Options{})
	if cmd := m.Init(); cmd != nil {
		t.Fatalf("Init with no store returned a command")
	}
	if m.theme.Name != "Nightfox" {
		t.Fatalf("default theme = %q, want Nightfox", m.theme.Name)
	}
}
