// Package ui provides the terminal user interface for memopad.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It renders whatever state.Store last
// returned and turns key presses into state actions. It never talks to the
// record store itself.
//
// # Package Structure
//
//   - app.go: Model, Update/View loop, dispatch command and Run
//   - list.go: memo list rendering and list keys
//   - editor.go: draft editor, color palette and confirm/alert handling
//   - header.go: status bar and command bar
//   - help.go: help overlay and dialog boxes
//   - keys.go: key bindings (bubbles/key) and help groups
//   - theme.go: color themes, including the memo palette
//
// # Event Flow
//
//  1. Init dispatches OnAppear, which loads and sorts the memos
//  2. Each key press maps to one or more state actions
//  3. Those actions run through Store.Dispatch inside a tea.Cmd
//  4. The resulting state arrives as a snapshotMsg and replaces the view state
//
// Actions that must apply together (the draft text, its color and the save
// request) go through a single Dispatch call so that nothing can interleave
// between them.
//
// # Views
//
//   - List: memos with a color swatch, first line and modification date
//   - Editor: multi-line draft with a color palette. Saving asks for
//     confirmation; a successful save shows a notice, and dismissing it
//     returns to the list and reloads.
//
// # Key Bindings
//
//   - j/k, g/G: Move in the list
//   - n: New memo
//   - enter: Edit selected memo
//   - d: Delete selected memo
//   - s: Cycle sort key; 1/2/3 pick color/date/text
//   - r: Reload
//   - tab/shift+tab: Cycle draft color (editor)
//   - ctrl+s: Save draft (editor)
//   - esc: Discard draft (editor)
//   - T: Cycle theme
//   - ?: Help
//   - q or Ctrl+C: Quit
//
// The theme and the sort key are saved to preferences whenever they change.
package ui
