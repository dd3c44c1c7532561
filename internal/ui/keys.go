package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// List navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// List actions
	New       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Reload    key.Binding
	CycleSort key.Binding
	SortColor key.Binding
	SortDate  key.Binding
	SortText  key.Binding

	// Editor
	NextColor key.Binding
	PrevColor key.Binding
	Save      key.Binding
	Leave     key.Binding

	// Dialogs
	Confirm key.Binding
	Cancel  key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		// List navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		// List actions
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New memo"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort"),
		),
		SortColor: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Sort by color"),
		),
		SortDate: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Sort by date"),
		),
		SortText: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Sort by text"),
		),

		// Editor
		NextColor: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next color"),
		),
		PrevColor: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous color"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save"),
		),
		Leave: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Discard"),
		),

		// Dialogs
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "Confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "Cancel"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "Dismiss"),
		),
	}
}

// listHelp and editorHelp feed the command bar for each view.
type listHelp struct{ keys keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	k := h.keys
	return []key.Binding{k.New, k.Edit, k.Delete, k.CycleSort, k.Reload, k.Help, k.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return h.keys.FullHelp()
}

type editorHelp struct{ keys keyMap }

func (h editorHelp) ShortHelp() []key.Binding {
	k := h.keys
	return []key.Binding{k.NextColor, k.Save, k.Leave}
}

func (h editorHelp) FullHelp() [][]key.Binding {
	return h.keys.FullHelp()
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Navigation
		{k.Up, k.Down, k.Top, k.Bottom},
		// Memos
		{k.New, k.Edit, k.Delete, k.Reload},
		// Sorting
		{k.CycleSort, k.SortColor, k.SortDate, k.SortText},
		// Editor
		{k.NextColor, k.PrevColor, k.Save, k.Leave},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
