package objects

import (
	"image/color"

	"github.com/cbodonnell/cangua/pkg/board"
)

var (
	BackgroundColor = color.RGBA{28, 30, 38, 255}
	loopColor       = color.RGBA{236, 230, 214, 255}
	starColor       = color.RGBA{255, 215, 0, 255}
	outlineColor    = color.RGBA{20, 20, 20, 255}
	highlightColor  = color.RGBA{255, 255, 255, 255}
)

var playerColors = [board.NumColors]color.RGBA{
	board.Red:    {214, 48, 49, 255},
	board.Blue:   {9, 132, 227, 255},
	board.Yellow: {253, 203, 110, 255},
	board.Green:  {0, 184, 148, 255},
}

// PlayerColor returns the display color of a player.
func PlayerColor(c board.Color) color.RGBA {
	if !c.Valid() {
		return highlightColor
	}
	return playerColors[c]
}

// tint blends clr towards white, keeping a quarter of the color.
func tint(clr color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(191 + int(clr.R)/4),
		G: uint8(191 + int(clr.G)/4),
		B: uint8(191 + int(clr.B)/4),
		A: 255,
	}
}
