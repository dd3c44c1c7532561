package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memopad/internal/memo"
	"github.com/five82/memopad/internal/state"
)

// openEditor switches to the editor, seeded from target or blank when nil.
func (m *Model) openEditor(target *memo.Memo) tea.Cmd {
	m.currentView = ViewEditor
	m.draft.Reset()
	m.draftColor = memo.DefaultColor
	m.editingID = nil

	actions := []state.Action{state.EditorAction{Event: state.Begin{Memo: target}}}
	if target != nil {
		id := target.ID
		m.editingID = &id
		m.draft.SetValue(target.Text)
		if target.Color.Valid() {
			m.draftColor = target.Color
		}
		actions = append([]state.Action{state.Find{ID: id}}, actions...)
	}
	m.resizeDraft()

	return tea.Batch(m.draft.Focus(), m.dispatch(actions...))
}

func (m *Model) closeEditor() {
	m.currentView = ViewList
	m.draft.Blur()
	m.draft.Reset()
	m.editingID = nil
	m.draftColor = memo.DefaultColor
}

func (m *Model) resizeDraft() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.draft.SetWidth(max(m.width-4, 10))
	m.draft.SetHeight(max(m.height-editorChromeHeight, 3))
}

// handleEditorKey processes keyboard input for the editor and its dialogs.
func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ed := m.snap.Editor

	if ed.Confirm != nil {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			if ed.Confirm.Kind == state.ConfirmKindUpdate {
				return m, m.dispatchEditor(state.ConfirmUpdate{ID: ed.Confirm.ID})
			}
			return m, m.dispatchEditor(state.ConfirmAdd{})
		case key.Matches(msg, m.keys.Cancel):
			return m, m.dispatchEditor(state.DismissConfirm{})
		}
		return m, nil
	}

	if ed.Alert != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			return m, m.dispatchEditor(state.DismissAlert{})
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Leave):
		m.closeEditor()
		return m, m.dispatch(state.EditorDisappeared{})

	case key.Matches(msg, m.keys.NextColor):
		m.draftColor = m.draftColor.Next()
		return m, m.dispatchEditor(state.EditColor{Color: m.draftColor})

	case key.Matches(msg, m.keys.PrevColor):
		m.draftColor = m.draftColor.Prev()
		return m, m.dispatchEditor(state.EditColor{Color: m.draftColor})

	case key.Matches(msg, m.keys.Save):
		var request state.EditorEvent = state.RequestAdd{}
		if m.editingID != nil {
			request = state.RequestUpdate{ID: *m.editingID}
		}
		return m, m.dispatchEditor(
			state.EditText{Text: m.draft.Value()},
			state.EditColor{Color: m.draftColor},
			request,
		)
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	return m, cmd
}

func (m Model) dispatchEditor(events ...state.EditorEvent) tea.Cmd {
	actions := make([]state.Action, 0, len(events))
	for _, ev := range events {
		actions = append(actions, state.EditorAction{Event: ev})
	}
	return m.dispatch(actions...)
}

// renderEditor renders the color palette and the draft.
func (m Model) renderEditor() string {
	styles := m.theme.Styles()

	chips := make([]string, 0, len(memo.Colors))
	for _, c := range memo.Colors {
		if c == m.draftColor {
			chips = append(chips, styles.Chip(c).Bold(true).Render("● "+c.String()))
			continue
		}
		chips = append(chips, styles.Swatch(c).Render("  "+c.String()+" "))
	}

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n")
	b.WriteString(styles.Editor.Render(m.draft.View()))
	return b.String()
}
