package state

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/five82/memopad/internal/memo"
	"github.com/five82/memopad/internal/repository"
)

// Store owns the application State and is the only writer to it.
type Store struct {
	mu    sync.Mutex
	state State
	env   environment
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for action tracing and failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.env.logger = logger
		}
	}
}

// WithClock overrides the clock used to date new memos.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.env.now = now
		}
	}
}

// WithDefaultSortKey sets the sort key the state starts with and returns to
// on OnAppear.
func WithDefaultSortKey(key memo.SortKey) Option {
	return func(s *Store) {
		s.env.defaultSort = key
	}
}

// New returns a Store backed by repo. The memo list stays empty until an
// OnAppear or Reload is dispatched.
func New(repo repository.Repository, opts ...Option) *Store {
	s := &Store{
		env: environment{
			repo:        repo,
			now:         time.Now,
			defaultSort: memo.SortByColor,
			logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = newState(s.env.defaultSort)
	return s
}

// Dispatch processes actions in order, along with every follow-up action
// their effects produce, and returns the resulting state. Calls never
// interleave: a second Dispatch waits until the first has drained its queue.
func (s *Store) Dispatch(ctx context.Context, actions ...Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := make([]Action, 0, len(actions))
	queue = append(queue, actions...)
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if a == nil {
			continue
		}
		s.env.logger.Debug("dispatch", "action", actionName(a))
		for _, effect := range reduce(&s.state, a, s.env) {
			if next := effect(ctx); next != nil {
				queue = append(queue, next)
			}
		}
	}
	return s.state.clone()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func actionName(a Action) string {
	switch a := a.(type) {
	case EditorAction:
		return fmt.Sprintf("editor/%T", a.Event)
	case SelectorAction:
		return fmt.Sprintf("selector/%T", a.Event)
	}
	return fmt.Sprintf("%T", a)
}
