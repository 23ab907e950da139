package board

import (
	"fmt"
	"strings"
)

// Color identifies a player and the path its pawns follow.
type Color uint8

const (
	Red Color = iota
	Blue
	Yellow
	Green
)

// Colors lists every color in turn order.
var Colors = [NumColors]Color{Red, Blue, Yellow, Green}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	default:
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
}

// Next returns the color that plays after c.
func (c Color) Next() Color {
	return Color((int(c) + 1) % NumColors)
}

// Valid reports whether c is one of the four board colors.
func (c Color) Valid() bool {
	return int(c) < NumColors
}

// ParseColor parses a color name, ignoring case.
func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return Red, fmt.Errorf("unknown color: %s", s)
}
