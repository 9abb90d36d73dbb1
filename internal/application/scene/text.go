package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the font every scene draws text with
var Face = text.NewGoXFace(basicfont.Face7x13)

// LineHeight is the advance between two lines of Face at scale 1
const LineHeight = 16

// DrawText draws s with its top-left corner at (x, y), scaled up by scale
func DrawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight
	text.Draw(screen, s, Face, op)
}

// DrawTextCentered draws s horizontally centered on cx
func DrawTextCentered(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	w, _ := text.Measure(s, Face, LineHeight)
	DrawText(screen, s, cx-w*scale/2, y, scale, clr)
}
