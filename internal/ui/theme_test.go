package ui

import (
	"errors"
	"testing"

	"github.com/five82/memopad/internal/memo"
	"github.com/five82/memopad/internal/state"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesCoverPalette(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, c := range memo.Colors {
			if th.MemoColors[c] == "" {
				t.Fatalf("theme %s has no color for %s", name, c)
			}
			if th.ColorFor(c) != th.MemoColors[c] {
				t.Fatalf("theme %s ColorFor(%s) = %q", name, c, th.ColorFor(c))
			}
		}
	}
}

func TestColorForUnknownFallsBackToMuted(t *testing.T) {
	th := GetTheme("Slate")
	if got := th.ColorFor("orange"); got != th.Muted {
		t.Fatalf("ColorFor(orange) = %q, want %q", got, th.Muted)
	}
}

func TestAlertColor(t *testing.T) {
	th := GetTheme("Nightfox")
	if got := alertColor(th, &state.Alert{Kind: state.AlertError, Err: errors.New("x")}); got != th.Danger {
		t.Fatalf("alertColor(error) = %q, want %q", got, th.Danger)
	}
	if got := alertColor(th, &state.Alert{Kind: state.AlertSuccess}); got != th.Success {
		t.Fatalf("alertColor(success) = %q, want %q", got, th.Success)
	}
}
