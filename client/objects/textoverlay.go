package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/cangua/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextOverlayObject dims the screen and prints a title with an optional hint below it.
type TextOverlayObject struct {
	*BaseObject

	title string
	hint  string
	color color.Color
}

func NewTextOverlayObject(id string, title, hint string, clr color.Color) GameObject {
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: ZIndexEffect + 1,
		}),
		title: title,
		hint:  hint,
		color: clr,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 160}, false)

	t := strings.ToUpper(o.title)
	bounds, _ := font.BoundString(fonts.MPlusTitleFont, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(w/2-float64(bounds.Max.X>>6)/2, h/2)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, t, fonts.MPlusTitleFont, op)

	if o.hint == "" {
		return
	}
	bounds, _ = font.BoundString(fonts.TTFNormalFont, o.hint)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(w/2-float64(bounds.Max.X>>6)/2, h/2+40)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, o.hint, fonts.TTFNormalFont, op)
}
