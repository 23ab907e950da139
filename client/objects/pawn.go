package objects

import (
	"strconv"

	"github.com/cbodonnell/cangua/client/fonts"
	"github.com/cbodonnell/cangua/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const pawnRadius = 9

// PawnObject draws a pawn at its animated position.
type PawnObject struct {
	*BaseObject

	pawn *game.Pawn
}

func NewPawnObject(id string, pawn *game.Pawn) *PawnObject {
	return &PawnObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexPawn,
		}),
		pawn: pawn,
	}
}

func (o *PawnObject) Draw(screen *ebiten.Image) {
	pos := o.pawn.Position()
	x, y := float32(pos.X), float32(pos.Y)
	clr := PlayerColor(o.pawn.Color())

	radius := float32(pawnRadius)
	if o.pawn.Finished() {
		radius = pawnRadius - 3
	}
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)
	vector.StrokeCircle(screen, x, y, radius, 1.5, outlineColor, true)
	if o.pawn.Active() {
		vector.StrokeCircle(screen, x, y, radius+3, 2, highlightColor, true)
	}

	// eye on the side the pawn is facing
	eyeX := x - radius/2
	if o.pawn.Facing() == game.FacingRight {
		eyeX = x + radius/2
	}
	vector.DrawFilledCircle(screen, eyeX, y-radius/3, 1.5, outlineColor, true)

	if !o.pawn.Moving() {
		text.Draw(screen, strconv.Itoa(o.pawn.Number()), fonts.TTFSmallFont, int(x)-3, int(y)+4, outlineColor)
	}
}
