package memo

import (
	"testing"
	"time"
)

func TestSort_ColorOrdersLexicographically(t *testing.T) {
	in := []Memo{
		{Text: "b", Color: Pink},
		{Text: "a", Color: Blue},
	}

	got := Sort(SortByColor, in)
	if got[0].Color != Blue || got[1].Color != Pink {
		t.Fatalf("Sort(Color) = [%s %s], want [blue pink]", got[0].Color, got[1].Color)
	}
	if in[0].Color != Pink {
		t.Fatalf("Sort mutated input: %v", in)
	}
}

func TestSort_IsStableForEqualKeys(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	in := []Memo{
		{Text: "first", Color: Yellow, Date: base},
		{Text: "second", Color: Blue, Date: base},
		{Text: "third", Color: Yellow, Date: base},
		{Text: "fourth", Color: Blue, Date: base},
	}

	got := Sort(SortByColor, in)
	want := []string{"second", "fourth", "first", "third"}
	for i, text := range want {
		if got[i].Text != text {
			t.Fatalf("Sort(Color)[%d] = %q, want %q (full %v)", i, got[i].Text, text, got)
		}
	}
}

func TestSort_DateResortIsNoop(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	in := []Memo{
		{Text: "c", Date: base.Add(2 * time.Minute)},
		{Text: "a", Date: base},
		{Text: "b", Date: base},
		{Text: "d", Date: base.Add(time.Minute)},
	}

	once := Sort(SortByDate, in)
	twice := Sort(SortByDate, once)
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("re-sort by date changed order at %d: %v vs %v", i, once, twice)
		}
	}
	if once[0].Text != "a" || once[1].Text != "b" {
		t.Fatalf("equal dates lost input order: %v", once)
	}
}

func TestSort_Text(t *testing.T) {
	in := []Memo{{Text: "pear"}, {Text: "apple"}, {Text: "fig"}}
	got := Sort(SortByText, in)
	if got[0].Text != "apple" || got[1].Text != "fig" || got[2].Text != "pear" {
		t.Fatalf("Sort(Text) = %v", got)
	}
}

func TestSort_EmptyReturnsNil(t *testing.T) {
	if got := Sort(SortByDate, nil); got != nil {
		t.Fatalf("Sort(nil) = %v, want nil", got)
	}
}

func TestSortKeyIndexRoundTrip(t *testing.T) {
	for i, key := range SortKeys {
		got, ok := SortKeyAt(i)
		if !ok || got != key {
			t.Fatalf("SortKeyAt(%d) = %v,%v want %v", i, got, ok, key)
		}
		if key.Index() != i {
			t.Fatalf("%v.Index() = %d, want %d", key, key.Index(), i)
		}
	}
	if _, ok := SortKeyAt(len(SortKeys)); ok {
		t.Fatalf("SortKeyAt out of range reported ok")
	}
	if _, ok := SortKeyAt(-1); ok {
		t.Fatalf("SortKeyAt(-1) reported ok")
	}
}

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"Color", SortByColor, false},
		{" date ", SortByDate, false},
		{"TEXT", SortByText, false},
		{"size", SortByColor, true},
	}
	for _, tc := range cases {
		got, err := ParseSortKey(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseSortKey(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseSortKey(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
