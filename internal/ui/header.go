package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: memo count, sort key and store location.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	sep := styles.Surface.Render("  ")

	parts := []string{
		styles.Logo.Render("memopad"),
		styles.MutedText.Render(memoCount(len(m.snap.Memos))),
		styles.MutedText.Render("Sort:") + styles.Surface.Render(" ") + styles.AccentText.Render(m.snap.SortKey.String()),
	}

	if m.currentView == ViewEditor {
		label := "New memo"
		if m.editingID != nil {
			label = "Editing"
		}
		parts = append(parts, styles.AccentText.Bold(true).Render(label))
	}

	if m.width >= LayoutCompactWidth && m.storePath != "" {
		parts = append(parts, styles.FaintText.Render(truncateMiddle(m.storePath, 40)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	var hints string
	if m.currentView == ViewEditor {
		hints = m.help.View(editorHelp{keys: m.keys})
	} else {
		hints = m.help.View(listHelp{keys: m.keys})
	}
	return styles.Footer.Width(m.width).Render(hints)
}

func memoCount(n int) string {
	if n == 1 {
		return "1 memo"
	}
	return fmt.Sprintf("%d memos", n)
}
