package memo

import (
	"errors"
	"fmt"
	"strings"
)

// Color tags a memo. Only the values in Colors are valid.
type Color string

const (
	Blue   Color = "blue"
	Yellow Color = "yellow"
	Pink   Color = "pink"
	Purple Color = "purple"
	Green  Color = "green"
)

// DefaultColor is used for new memos and empty drafts.
const DefaultColor = Blue

// Colors lists the palette in picker order.
var Colors = []Color{Blue, Yellow, Pink, Purple, Green}

// ErrInvalidColor is returned for colors outside the palette.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor normalizes s and checks it against the palette.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// Valid reports whether c is part of the palette.
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// Next returns the color after c in the palette, wrapping around.
func (c Color) Next() Color {
	return c.step(1)
}

// Prev returns the color before c in the palette, wrapping around.
func (c Color) Prev() Color {
	return c.step(-1)
}

func (c Color) step(delta int) Color {
	for i, known := range Colors {
		if c == known {
			n := len(Colors)
			return Colors[((i+delta)%n+n)%n]
		}
	}
	return DefaultColor
}

func (c Color) String() string {
	return string(c)
}
