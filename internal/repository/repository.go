// Package repository is the memo persistence boundary used by the state
// container. Backends are swappable: the SQLite record store in production,
// the in-memory Memory backend in tests.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/five82/memopad/internal/memo"
	"github.com/five82/memopad/internal/recordstore"
)

// Repository is the set of memo operations the state container needs.
// Errors from the backing store are returned unchanged.
type Repository interface {
	FindAll(ctx context.Context) ([]memo.Memo, error)
	FindOne(ctx context.Context, id uuid.UUID) (memo.Memo, bool, error)
	Add(ctx context.Context, m memo.Memo) error
	Delete(ctx context.Context, id uuid.UUID) error
	Update(ctx context.Context, id uuid.UUID, text string, color memo.Color) error
}

// Records adapts a record store to Repository.
type Records struct {
	store *recordstore.Store
}

var _ Repository = (*Records)(nil)

// New wraps store. A nil store behaves like an unopened one.
func New(store *recordstore.Store) *Records {
	if store == nil {
		store = &recordstore.Store{}
	}
	return &Records{store: store}
}

func (r *Records) FindAll(ctx context.Context) ([]memo.Memo, error) {
	return r.store.FindAll(ctx)
}

func (r *Records) FindOne(ctx context.Context, id uuid.UUID) (memo.Memo, bool, error) {
	return r.store.FindOne(ctx, id)
}

func (r *Records) Add(ctx context.Context, m memo.Memo) error {
	return r.store.Add(ctx, m)
}

func (r *Records) Delete(ctx context.Context, id uuid.UUID) error {
	return r.store.Delete(ctx, id)
}

func (r *Records) Update(ctx context.Context, id uuid.UUID, text string, color memo.Color) error {
	return r.store.Update(ctx, id, text, color)
}
