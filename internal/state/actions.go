package state

import (
	"github.com/google/uuid"

	"github.com/five82/memopad/internal/memo"
)

// Action is an intent sent to the Store. The concrete types below are the
// only implementations.
type Action interface {
	action()
}

type (
	// OnAppear resets the state to defaults and reloads.
	OnAppear struct{}

	// Reload refetches every memo from the repository, then sorts.
	Reload struct{}

	// ChangeSortKey switches the active sort key, then sorts.
	ChangeSortKey struct{ Key memo.SortKey }

	// Sort reorders the loaded memos by the active key.
	Sort struct{}

	// Delete removes a memo, then reloads.
	Delete struct{ ID uuid.UUID }

	// Find looks up a single memo into State.Selected.
	Find struct{ ID uuid.UUID }

	// EditorDisappeared discards the draft and resets the editor.
	EditorDisappeared struct{}

	// ReportError shows err in the root alert.
	ReportError struct{ Err error }

	// DismissError clears the root alert.
	DismissError struct{}

	// EditorAction routes an event to the editor sub-state.
	EditorAction struct{ Event EditorEvent }

	// SelectorAction routes an event to the selector sub-state.
	SelectorAction struct{ Event SelectorEvent }
)

// Results posted back by effects.
type (
	memosLoaded struct {
		memos []memo.Memo
		err   error
	}
	memoFound struct {
		memo memo.Memo
		ok   bool
		err  error
	}
	memoDeleted struct {
		id  uuid.UUID
		err error
	}
)

func (OnAppear) action()          {}
func (Reload) action()            {}
func (ChangeSortKey) action()     {}
func (Sort) action()              {}
func (Delete) action()            {}
func (Find) action()              {}
func (EditorDisappeared) action() {}
func (ReportError) action()       {}
func (DismissError) action()      {}
func (EditorAction) action()      {}
func (SelectorAction) action()    {}
func (memosLoaded) action()       {}
func (memoFound) action()         {}
func (memoDeleted) action()       {}
