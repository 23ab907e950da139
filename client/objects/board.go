package objects

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ZIndexSquare = iota
	ZIndexStar
	ZIndexPawn
	ZIndexEffect
)

// BoardObject is the root of the board tiles and stars.
type BoardObject struct {
	*SortedZIndexObject

	board *board.Board
	stars []*game.Star
}

func NewBoardObject(id string, b *board.Board, stars []*game.Star) *BoardObject {
	return &BoardObject{
		SortedZIndexObject: NewSortedZIndexObject(id),
		board:              b,
		stars:              stars,
	}
}

func (o *BoardObject) Init() error {
	if len(o.GetChildren()) > 0 {
		return nil
	}

	entries := make(map[board.Coordinate]board.Color, board.NumColors)
	for _, owner := range board.Colors {
		entry, err := o.board.PositionToCoordinate(owner, board.EntryPosition)
		if err != nil {
			return err
		}
		entries[entry] = owner
	}
	for _, c := range o.board.LoopCoordinates() {
		clr := loopColor
		if owner, ok := entries[c]; ok {
			clr = tint(PlayerColor(owner))
		}
		if err := o.addSquare(c, clr); err != nil {
			return err
		}
	}

	for _, owner := range board.Colors {
		for pos := board.FinishLaneStart; pos <= board.MaxPosition; pos++ {
			c, err := o.board.PositionToCoordinate(owner, pos)
			if err != nil {
				return err
			}
			if err := o.addSquare(c, PlayerColor(owner)); err != nil {
				return err
			}
		}
		for n := 1; n <= board.PawnsPerColor; n++ {
			c, err := o.board.YardCoordinate(owner, n)
			if err != nil {
				return err
			}
			if err := o.addSquare(c, tint(PlayerColor(owner))); err != nil {
				return err
			}
		}
	}

	for i, star := range o.stars {
		id := fmt.Sprintf("star-%d", i)
		if err := o.AddChild(id, NewStarObject(id, star)); err != nil {
			return err
		}
	}
	return nil
}

func (o *BoardObject) addSquare(c board.Coordinate, clr color.RGBA) error {
	id := "square-" + c.String()
	return o.AddChild(id, NewSquareObject(id, NewSquareObjectOptions{
		Coordinate: c,
		Color:      clr,
		ZIndex:     ZIndexSquare,
	}))
}

// StarObject draws a five-pointed star on its tile.
type StarObject struct {
	*BaseObject

	star *game.Star
}

func NewStarObject(id string, star *game.Star) *StarObject {
	return &StarObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexStar,
		}),
		star: star,
	}
}

func (o *StarObject) Draw(screen *ebiten.Image) {
	center := board.ToPixel(o.star.Coordinate())
	const outer, inner = 10.0, 4.0

	var path vector.Path
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		x := float32(center.X + r*math.Cos(angle))
		y := float32(center.Y + r*math.Sin(angle))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := starColor.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(r) / 0xffff
		vertices[i].ColorG = float32(g) / 0xffff
		vertices[i].ColorB = float32(b) / 0xffff
		vertices[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vertices, indices, whitePixel, &ebiten.DrawTrianglesOptions{})
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(highlightColor)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()
