package objects

import (
	"image/color"

	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SquareObject draws one board tile.
type SquareObject struct {
	*BaseObject

	x, y float32
	size float32
	clr  color.Color
}

type NewSquareObjectOptions struct {
	// Coordinate is the grid square the tile covers.
	Coordinate board.Coordinate
	// Color is the fill color of the tile.
	Color color.Color
	// ZIndex is the z-index of the tile.
	ZIndex int
}

func NewSquareObject(id string, opts NewSquareObjectOptions) *SquareObject {
	center := board.ToPixel(opts.Coordinate)
	size := float32(board.TileSize - 1)
	return &SquareObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		x:    float32(center.X) - size/2,
		y:    float32(center.Y) - size/2,
		size: size,
		clr:  opts.Color,
	}
}

func (o *SquareObject) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, o.x, o.y, o.size, o.size, o.clr, false)
	vector.StrokeRect(screen, o.x, o.y, o.size, o.size, 1, outlineColor, false)
}
