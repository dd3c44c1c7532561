package state

import "github.com/five82/memopad/internal/memo"

// SelectorState holds the sort selector position, an index into memo.SortKeys.
type SelectorState struct {
	Index int
}

// SelectorEvent is an action handled by the selector sub-state.
type SelectorEvent interface {
	selectorEvent()
}

// ChangeSelection moves the selector. Out of range indexes are ignored.
type ChangeSelection struct{ Index int }

func (ChangeSelection) selectorEvent() {}

// reduceSelector applies ev and returns the sort key the parent should switch
// to, if any.
func reduceSelector(s *SelectorState, ev SelectorEvent) (memo.SortKey, bool) {
	switch ev := ev.(type) {
	case ChangeSelection:
		key, ok := memo.SortKeyAt(ev.Index)
		if !ok {
			return memo.SortByColor, false
		}
		s.Index = ev.Index
		return key, true
	}
	return memo.SortByColor, false
}
