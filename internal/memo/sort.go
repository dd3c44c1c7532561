package memo

import (
	"fmt"
	"sort"
	"strings"
)

// SortKey selects the field the memo list is ordered by.
type SortKey int

const (
	SortByColor SortKey = iota
	SortByDate
	SortByText
)

// SortKeys is the fixed selector order. Selector indexes refer to this slice.
var SortKeys = []SortKey{SortByColor, SortByDate, SortByText}

// SortKeyAt maps a selector index to its key.
func SortKeyAt(idx int) (SortKey, bool) {
	if idx < 0 || idx >= len(SortKeys) {
		return SortByColor, false
	}
	return SortKeys[idx], true
}

// Index returns the selector index of k, or 0 for unknown keys.
func (k SortKey) Index() int {
	for i, key := range SortKeys {
		if key == k {
			return i
		}
	}
	return 0
}

func (k SortKey) String() string {
	switch k {
	case SortByDate:
		return "Date"
	case SortByText:
		return "Text"
	default:
		return "Color"
	}
}

// ParseSortKey accepts the labels produced by String, case-insensitively.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "color":
		return SortByColor, nil
	case "date":
		return SortByDate, nil
	case "text":
		return SortByText, nil
	default:
		return SortByColor, fmt.Errorf("unknown sort key %q", s)
	}
}

// Sort returns memos ordered by key in a new slice. The sort is stable so
// memos with equal keys keep their store order.
func Sort(key SortKey, memos []Memo) []Memo {
	sorted := Clone(memos)
	sort.SliceStable(sorted, func(i, j int) bool {
		switch key {
		case SortByDate:
			return sorted[i].Date.Before(sorted[j].Date)
		case SortByText:
			return sorted[i].Text < sorted[j].Text
		default:
			return sorted[i].Color < sorted[j].Color
		}
	})
	return sorted
}
