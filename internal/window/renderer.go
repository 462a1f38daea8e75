package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/diegok/duopong/internal/game"
)

// Renderer draws onto an ebiten image laid out at the logical field size
type Renderer struct {
	screen    *ebiten.Image
	faces     *Faces
	palette   game.Palette
	transform game.Transform
}

func NewRenderer(faces *Faces, palette game.Palette) *Renderer {
	return &Renderer{faces: faces, palette: palette}
}

// Frame fills screen with the background and lets draw render onto it
func (r *Renderer) Frame(screen *ebiten.Image, draw func(game.Renderer)) {
	r.screen = screen
	r.transform = game.TransformNone
	screen.Fill(r.palette.Background)
	draw(r)
	r.screen = nil
}

func (r *Renderer) SetTransform(t game.Transform) {
	r.transform = t
}

func (r *Renderer) DrawRect(x, y, w, h float64, c color.Color) {
	if r.transform == game.TransformFlipY {
		x, y = game.FlipRect(x, y, w, h)
	}
	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), r.palette.Ink(c), false)
}

func (r *Renderer) DrawText(s string, x, y float64, size int, c color.Color) {
	if r.transform == game.TransformFlipY {
		y = game.WindowHeight - y
	}
	face := r.faces.Get(size)
	width := font.MeasureString(face, s).Round()
	text.Draw(r.screen, s, face, int(x)-width/2, int(y), r.palette.Ink(c))
}
