package state

import (
	"github.com/google/uuid"

	"github.com/five82/memopad/internal/memo"
)

// State is everything the presentation layer renders.
type State struct {
	Memos    []memo.Memo
	Selected *memo.Memo
	SortKey  memo.SortKey
	Editor   EditorState
	Selector SelectorState

	// Alert reports failures outside the editor: loading, deleting, lookups
	// and a store that could not be opened.
	Alert *Alert
}

// AlertKind distinguishes success notices from failures.
type AlertKind int

const (
	AlertSuccess AlertKind = iota
	AlertError
)

// Alert is a dismissable message.
type Alert struct {
	Kind    AlertKind
	Title   string
	Message string
	Err     error // set for AlertError
}

// ConfirmKind names the write a confirm dialog is guarding.
type ConfirmKind int

const (
	ConfirmKindAdd ConfirmKind = iota + 1
	ConfirmKindUpdate
)

// ConfirmDialog asks the user to approve a write before it happens.
type ConfirmDialog struct {
	Kind    ConfirmKind
	ID      uuid.UUID // target memo for ConfirmUpdate
	Title   string
	Message string
}

func newState(sortKey memo.SortKey) State {
	return State{
		SortKey:  sortKey,
		Editor:   newEditorState(),
		Selector: SelectorState{Index: sortKey.Index()},
	}
}

func (s State) clone() State {
	dup := s
	dup.Memos = memo.Clone(s.Memos)
	if s.Selected != nil {
		sel := *s.Selected
		dup.Selected = &sel
	}
	dup.Alert = cloneAlert(s.Alert)
	dup.Editor = s.Editor.clone()
	return dup
}

func cloneAlert(a *Alert) *Alert {
	if a == nil {
		return nil
	}
	dup := *a
	return &dup
}

func errorAlert(title string, err error) *Alert {
	return &Alert{
		Kind:    AlertError,
		Title:   title,
		Message: err.Error(),
		Err:     err,
	}
}

func successAlert(title, message string) *Alert {
	return &Alert{
		Kind:    AlertSuccess,
		Title:   title,
		Message: message,
	}
}

// dedupe keeps the first memo for each id.
func dedupe(memos []memo.Memo) []memo.Memo {
	if len(memos) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(memos))
	out := make([]memo.Memo, 0, len(memos))
	for _, m := range memos {
		if _, ok := seen[m.ID]; ok {
			continue
		}
		seen[m.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
