// Package state provides the application state container for memopad.
//
// # Overview
//
// The Store holds the single State the UI renders and is the only code that
// changes it. The UI sends Actions through Dispatch and reads copies through
// Snapshot; it never touches the repository itself.
//
// # Architecture
//
// Dispatch drains a queue. Each action goes through the reducer, which
// updates State and returns Effects. Effects are where repository calls
// happen, and whatever action an effect returns is appended to the same queue:
//
//	Dispatch(Delete{id})
//	  reduce(Delete)        -> effect: repo.Delete(id)
//	  reduce(memoDeleted)   -> effect: send(Reload)
//	  reduce(Reload)        -> effect: repo.FindAll()
//	  reduce(memosLoaded)   -> State.Memos = result, effect: send(Sort)
//	  reduce(Sort)          -> State.Memos = memo.Sort(SortKey, Memos)
//
// Follow-ups are explicit return values, so there is no callback re-entering
// the reducer from another goroutine.
//
// # Sub-states
//
// The editor form and the sort selector are nested structs owned by State.
// Their actions arrive wrapped in EditorAction and SelectorAction and are
// handed to reduceEditor and reduceSelector. The selector reports the key
// it moved to and the parent turns that into ChangeSortKey, so
// State.Selector.Index and State.SortKey always agree.
//
// # Confirmation Gate
//
// Adding and updating take two steps. RequestAdd / RequestUpdate only open a
// ConfirmDialog; ConfirmAdd / ConfirmUpdate write only when the matching
// dialog is open. A lone confirm is dropped.
//
// # Concurrency Model
//
// Dispatch holds a mutex until its queue is empty:
//
//   - Actions are applied one at a time, in the order received
//   - Repository calls are serialized, which the single-writer store needs
//   - Snapshot waits for an in-flight Dispatch and never sees half a change
//
// Dispatch blocks for the duration of the repository calls it triggers.
// Callers on a UI event loop run it inside a command and feed the returned
// State back as a message.
//
// # Error Handling
//
// A failed repository call sets an Alert and stops that chain:
//
//	// FindAll fails during Reload
//	→ State.Memos   = <unchanged>
//	→ State.Alert   = {Kind: AlertError, Err: err}
//	→ Sort          = not dispatched
//
// Add and update failures go to Editor.Alert instead, and dismissing them
// keeps the draft. The UI always has the last good memo list to show.
//
// # Testing Considerations
//
// New takes any repository.Repository. Tests use repository.NewMemory or a
// stub that fails on demand; WithClock pins the dates on new memos.
package state
