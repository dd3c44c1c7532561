// Package memo defines the Memo record, its color palette, and the sort
// policy applied to the in-memory memo list.
//
// Sort is pure and stable: it never mutates its input and memos that compare
// equal keep the order the record store returned them in (ascending date,
// then insertion). The list of sort keys is owned here rather than by the UI,
// so a selector index always maps to the same key:
//
//	idx 0 -> SortByColor
//	idx 1 -> SortByDate
//	idx 2 -> SortByText
package memo
