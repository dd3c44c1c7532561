package state

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/memopad/internal/memo"
	"github.com/five82/memopad/internal/repository"
)

// Effect is deferred work produced by the reducer. Its result, if not nil,
// is queued as the next action.
type Effect func(ctx context.Context) Action

type environment struct {
	repo        repository.Repository
	now         func() time.Time
	defaultSort memo.SortKey
	logger      *slog.Logger
}

func send(a Action) Effect {
	return func(context.Context) Action { return a }
}

// reduce applies a to s. Repository calls only happen inside the returned
// effects, never in reduce itself.
func reduce(s *State, a Action, env environment) []Effect {
	switch a := a.(type) {
	case OnAppear:
		*s = newState(env.defaultSort)
		return []Effect{send(Reload{})}

	case Reload:
		repo := env.repo
		return []Effect{func(ctx context.Context) Action {
			memos, err := repo.FindAll(ctx)
			return memosLoaded{memos: memos, err: err}
		}}

	case memosLoaded:
		if a.err != nil {
			env.logger.Warn("memo reload failed", "error", a.err)
			s.Alert = errorAlert("Could not load memos", a.err)
			return nil
		}
		s.Memos = dedupe(a.memos)
		return []Effect{send(Sort{})}

	case ChangeSortKey:
		s.SortKey = a.Key
		s.Selector.Index = a.Key.Index()
		return []Effect{send(Sort{})}

	case Sort:
		s.Memos = memo.Sort(s.SortKey, s.Memos)
		return nil

	case Delete:
		id, repo := a.ID, env.repo
		return []Effect{func(ctx context.Context) Action {
			return memoDeleted{id: id, err: repo.Delete(ctx, id)}
		}}

	case memoDeleted:
		if a.err != nil {
			env.logger.Warn("memo delete failed", "id", a.id, "error", a.err)
			s.Alert = errorAlert("Could not delete memo", a.err)
			return nil
		}
		env.logger.Info("memo deleted", "id", a.id)
		if s.Selected != nil && s.Selected.ID == a.id {
			s.Selected = nil
		}
		return []Effect{send(Reload{})}

	case Find:
		id, repo := a.ID, env.repo
		return []Effect{func(ctx context.Context) Action {
			m, ok, err := repo.FindOne(ctx, id)
			return memoFound{memo: m, ok: ok, err: err}
		}}

	case memoFound:
		if a.err != nil {
			env.logger.Warn("memo lookup failed", "error", a.err)
			s.Alert = errorAlert("Could not open memo", a.err)
			return nil
		}
		if !a.ok {
			s.Selected = nil
			return nil
		}
		m := a.memo
		s.Selected = &m
		return nil

	case EditorDisappeared:
		s.Editor = newEditorState()
		return nil

	case ReportError:
		if a.Err != nil {
			s.Alert = errorAlert("Something went wrong", a.Err)
		}
		return nil

	case DismissError:
		s.Alert = nil
		return nil

	case EditorAction:
		return reduceEditor(&s.Editor, a.Event, env)

	case SelectorAction:
		key, ok := reduceSelector(&s.Selector, a.Event)
		if !ok {
			return nil
		}
		return []Effect{send(ChangeSortKey{Key: key})}
	}

	env.logger.Debug("unhandled action", "action", actionName(a))
	return nil
}
