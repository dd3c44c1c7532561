package memo

import (
	"time"

	"github.com/google/uuid"
)

// Memo is a single persisted note.
type Memo struct {
	ID    uuid.UUID
	Text  string
	Date  time.Time // last modified
	Color Color
}

// New returns a memo with a fresh ID, dated now. An empty color becomes the default.
func New(text string, color Color, now time.Time) Memo {
	if color == "" {
		color = DefaultColor
	}
	return Memo{
		ID:    uuid.New(),
		Text:  text,
		Date:  now,
		Color: color,
	}
}

// Clone returns a copy of memos, or nil when empty.
func Clone(memos []Memo) []Memo {
	if len(memos) == 0 {
		return nil
	}
	dup := make([]Memo, len(memos))
	copy(dup, memos)
	return dup
}
