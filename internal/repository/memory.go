package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/five82/memopad/internal/memo"
)

// ErrDuplicateID is returned by Memory.Add for an id that is already stored.
var ErrDuplicateID = errors.New("duplicate memo id")

// Memory is an in-process Repository with the same ordering and no-op rules
// as the record store. Nothing survives the process.
type Memory struct {
	mu    sync.Mutex
	memos []memo.Memo // insertion order
	now   func() time.Time
}

var _ Repository = (*Memory)(nil)

// MemoryOption configures a Memory repository.
type MemoryOption func(*Memory)

// WithMemoryClock overrides the clock used to stamp updates.
func WithMemoryClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemory returns an empty in-memory repository.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (r *Memory) FindAll(ctx context.Context) ([]memo.Memo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := memo.Clone(r.memos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (r *Memory) FindOne(ctx context.Context, id uuid.UUID) (memo.Memo, bool, error) {
	if err := ctx.Err(); err != nil {
		return memo.Memo{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.memos[i], true, nil
	}
	return memo.Memo{}, false, nil
}

func (r *Memory) Add(ctx context.Context, m memo.Memo) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.ID == uuid.Nil {
		return fmt.Errorf("add memo: missing id")
	}
	if !m.Color.Valid() {
		return fmt.Errorf("add memo %s: %w: %q", m.ID, memo.ErrInvalidColor, m.Color)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(m.ID) >= 0 {
		return fmt.Errorf("add memo %s: %w", m.ID, ErrDuplicateID)
	}
	r.memos = append(r.memos, m)
	return nil
}

func (r *Memory) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.memos = append(r.memos[:i], r.memos[i+1:]...)
	}
	return nil
}

func (r *Memory) Update(ctx context.Context, id uuid.UUID, text string, color memo.Color) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !color.Valid() {
		return fmt.Errorf("update memo %s: %w: %q", id, memo.ErrInvalidColor, color)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		r.memos[i].Text = text
		r.memos[i].Color = color
		r.memos[i].Date = r.now()
	}
	return nil
}

func (r *Memory) indexOf(id uuid.UUID) int {
	for i, m := range r.memos {
		if m.ID == id {
			return i
		}
	}
	return -1
}
