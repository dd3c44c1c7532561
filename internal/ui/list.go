package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/memopad/internal/memo"
	"github.com/five82/memopad/internal/state"
)

// handleListKey processes keyboard input for the memo list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.snap.Memos)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.selectedRow = max(count-1, 0)
		return m, nil

	case key.Matches(msg, m.keys.New):
		cmd := m.openEditor(nil)
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		selected, ok := m.selectedMemo()
		if !ok {
			return m, nil
		}
		cmd := m.openEditor(&selected)
		return m, cmd

	case key.Matches(msg, m.keys.Delete):
		selected, ok := m.selectedMemo()
		if !ok {
			return m, nil
		}
		return m, m.dispatch(state.Delete{ID: selected.ID})

	case key.Matches(msg, m.keys.Reload):
		return m, m.dispatch(state.Reload{})

	case key.Matches(msg, m.keys.CycleSort):
		next := (m.snap.Selector.Index + 1) % len(memo.SortKeys)
		return m, m.selectSort(next)

	case key.Matches(msg, m.keys.SortColor):
		return m, m.selectSort(0)

	case key.Matches(msg, m.keys.SortDate):
		return m, m.selectSort(1)

	case key.Matches(msg, m.keys.SortText):
		return m, m.selectSort(2)
	}

	return m, nil
}

func (m Model) selectSort(idx int) tea.Cmd {
	return m.dispatch(state.SelectorAction{Event: state.ChangeSelection{Index: idx}})
}

func (m Model) selectedMemo() (memo.Memo, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.snap.Memos) {
		return memo.Memo{}, false
	}
	return m.snap.Memos[m.selectedRow], true
}

func (m *Model) clampSelection() {
	count := len(m.snap.Memos)
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// renderList renders the memo rows, scrolled to keep the selection visible.
func (m Model) renderList() string {
	styles := m.theme.Styles()

	if len(m.snap.Memos) == 0 {
		return styles.MutedText.Render("  No memos yet. Press n to write one.")
	}

	visible := max(m.height-listChromeHeight, 1)
	offset := 0
	if m.selectedRow >= visible {
		offset = m.selectedRow - visible + 1
	}
	end := min(offset+visible, len(m.snap.Memos))

	showDate := m.width >= LayoutCompactWidth
	textWidth := m.width - 4
	if showDate {
		textWidth -= len(dateLayout) + 2
	}
	textWidth = max(textWidth, 8)

	lines := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		mm := m.snap.Memos[i]
		text := padRight(truncate(preview(mm.Text), textWidth), textWidth)
		row := " " + text
		if showDate {
			row += "  " + mm.Date.Local().Format(dateLayout)
		}

		swatch := styles.Swatch(mm.Color).Render(" ■")
		if i == m.selectedRow {
			lines = append(lines, swatch+styles.Selected.Render(row))
			continue
		}
		lines = append(lines, swatch+styles.Text.Render(row))
	}
	return strings.Join(lines, "\n")
}
