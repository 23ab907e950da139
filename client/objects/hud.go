package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/cangua/client/fonts"
	"github.com/cbodonnell/cangua/pkg/board"
	"github.com/cbodonnell/cangua/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudLineHeight = 20
	// hudLogLines is the number of recent events listed under the scores
	hudLogLines = 12
)

// HUDObject shows whose turn it is, the last dice and each player's progress.
type HUDObject struct {
	*BaseObject

	session *game.Session
	x, y    int
	log     []string
}

func NewHUDObject(id string, session *game.Session, x, y int) *HUDObject {
	return &HUDObject{
		BaseObject: NewBaseObject(id, nil),
		session:    session,
		x:          x,
		y:          y,
	}
}

// AddLine appends a line to the event log, dropping the oldest.
func (o *HUDObject) AddLine(line string) {
	o.log = append(o.log, line)
	if len(o.log) > hudLogLines {
		o.log = o.log[len(o.log)-hudLogLines:]
	}
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	sk := o.session.Statekeep()
	y := o.y + hudLineHeight

	current := sk.Current()
	text.Draw(screen, fmt.Sprintf("%s to roll", current.Name()), fonts.TTFLargeFont, o.x, y, PlayerColor(current.Color()))
	y += hudLineHeight + 8

	for _, pl := range sk.Players() {
		clr := PlayerColor(pl.Color())
		vector.DrawFilledRect(screen, float32(o.x), float32(y-12), 12, 12, clr, false)
		if pl.IsTurn() {
			vector.StrokeRect(screen, float32(o.x)-2, float32(y-14), 16, 16, 2, highlightColor, false)
		}
		d1, d2 := pl.LastDice()
		line := fmt.Sprintf("%-8s home %d/%d  kicked %d  dice %d+%d", pl.Name(), pl.PawnsHome(), board.PawnsPerColor, pl.TimesKicked(), d1, d2)
		text.Draw(screen, line, fonts.TTFSmallFont, o.x+20, y, color.White)
		y += hudLineHeight
	}

	y += hudLineHeight / 2
	for _, line := range o.log {
		text.Draw(screen, line, fonts.TTFSmallFont, o.x, y, color.Gray{Y: 200})
		y += hudLineHeight - 4
	}
}
