package state

import (
	"context"

	"github.com/google/uuid"

	"github.com/five82/memopad/internal/memo"
)

// EditorState is the create/edit form.
type EditorState struct {
	Text    string
	Color   memo.Color
	Alert   *Alert
	Confirm *ConfirmDialog

	// IsCompleted is set once a successful save has been acknowledged. The
	// view closes the editor and reloads when it sees it.
	IsCompleted bool
}

// Prompting reports whether a confirm dialog or alert is open. Draft edits
// are ignored while it is.
func (e EditorState) Prompting() bool {
	return e.Alert != nil || e.Confirm != nil
}

func newEditorState() EditorState {
	return EditorState{Color: memo.DefaultColor}
}

func (e EditorState) clone() EditorState {
	dup := e
	dup.Alert = cloneAlert(e.Alert)
	if e.Confirm != nil {
		c := *e.Confirm
		dup.Confirm = &c
	}
	return dup
}

// EditorEvent is an action handled by the editor sub-state.
type EditorEvent interface {
	editorEvent()
}

type (
	// Begin seeds the draft from Memo, or from defaults when Memo is nil.
	Begin struct{ Memo *memo.Memo }

	EditText  struct{ Text string }
	EditColor struct{ Color memo.Color }

	// RequestAdd opens the confirm dialog for saving the draft as a new memo.
	RequestAdd struct{}
	// ConfirmAdd saves the draft. Ignored unless RequestAdd opened a dialog.
	ConfirmAdd struct{}

	// RequestUpdate opens the confirm dialog for writing the draft to ID.
	RequestUpdate struct{ ID uuid.UUID }
	// ConfirmUpdate writes the draft. Ignored unless a dialog for ID is open.
	ConfirmUpdate struct{ ID uuid.UUID }

	DismissAlert   struct{}
	DismissConfirm struct{}
)

type (
	memoAdded struct {
		id  uuid.UUID
		err error
	}
	memoUpdated struct {
		id  uuid.UUID
		err error
	}
)

func (Begin) editorEvent()          {}
func (EditText) editorEvent()       {}
func (EditColor) editorEvent()      {}
func (RequestAdd) editorEvent()     {}
func (ConfirmAdd) editorEvent()     {}
func (RequestUpdate) editorEvent()  {}
func (ConfirmUpdate) editorEvent()  {}
func (DismissAlert) editorEvent()   {}
func (DismissConfirm) editorEvent() {}
func (memoAdded) editorEvent()      {}
func (memoUpdated) editorEvent()    {}

func reduceEditor(s *EditorState, ev EditorEvent, env environment) []Effect {
	switch ev := ev.(type) {
	case Begin:
		*s = newEditorState()
		if ev.Memo != nil {
			s.Text = ev.Memo.Text
			if ev.Memo.Color.Valid() {
				s.Color = ev.Memo.Color
			}
		}
		return nil

	case EditText:
		if !s.Prompting() {
			s.Text = ev.Text
		}
		return nil

	case EditColor:
		if !s.Prompting() && ev.Color.Valid() {
			s.Color = ev.Color
		}
		return nil

	case RequestAdd:
		if s.Prompting() {
			return nil
		}
		s.Confirm = &ConfirmDialog{
			Kind:    ConfirmKindAdd,
			Title:   "Save memo",
			Message: "Save this memo?",
		}
		return nil

	case ConfirmAdd:
		if s.Confirm == nil || s.Confirm.Kind != ConfirmKindAdd {
			env.logger.Debug("add confirmation without pending request ignored")
			return nil
		}
		s.Confirm = nil
		draft := memo.New(s.Text, s.Color, env.now())
		repo := env.repo
		return []Effect{func(ctx context.Context) Action {
			err := repo.Add(ctx, draft)
			return EditorAction{Event: memoAdded{id: draft.ID, err: err}}
		}}

	case memoAdded:
		if ev.err != nil {
			env.logger.Warn("memo add failed", "id", ev.id, "error", ev.err)
			s.Alert = errorAlert("Could not save memo", ev.err)
			return nil
		}
		env.logger.Info("memo added", "id", ev.id)
		s.Alert = successAlert("Saved", "Memo saved.")
		return nil

	case RequestUpdate:
		if s.Prompting() {
			return nil
		}
		s.Confirm = &ConfirmDialog{
			Kind:    ConfirmKindUpdate,
			ID:      ev.ID,
			Title:   "Update memo",
			Message: "Save changes to this memo?",
		}
		return nil

	case ConfirmUpdate:
		if s.Confirm == nil || s.Confirm.Kind != ConfirmKindUpdate || s.Confirm.ID != ev.ID {
			env.logger.Debug("update confirmation without pending request ignored", "id", ev.ID)
			return nil
		}
		s.Confirm = nil
		id, text, color := ev.ID, s.Text, s.Color
		repo := env.repo
		return []Effect{func(ctx context.Context) Action {
			err := repo.Update(ctx, id, text, color)
			return EditorAction{Event: memoUpdated{id: id, err: err}}
		}}

	case memoUpdated:
		if ev.err != nil {
			env.logger.Warn("memo update failed", "id", ev.id, "error", ev.err)
			s.Alert = errorAlert("Could not update memo", ev.err)
			return nil
		}
		env.logger.Info("memo updated", "id", ev.id)
		s.Alert = successAlert("Updated", "Memo updated.")
		return nil

	case DismissAlert:
		if s.Alert == nil {
			return nil
		}
		// Only a success closes the editor; after a failure the draft stays
		// so the user can retry.
		done := s.Alert.Kind == AlertSuccess
		s.Alert = nil
		if done {
			s.IsCompleted = true
		}
		return nil

	case DismissConfirm:
		s.Confirm = nil
		return nil
	}
	return nil
}
