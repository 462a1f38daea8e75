package ui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
)

const (
	BlockChar  = '\u2588' // █
	CenterChar = '|'
)

// Renderer draws the game onto a terminal. The logical field is scaled to
// whatever size the terminal has; text sizes are ignored.
type Renderer struct {
	screen    *Screen
	palette   game.Palette
	transform game.Transform
	scaleX    float64
	scaleY    float64
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen, palette game.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Frame clears the terminal, lets draw fill it and shows the result
func (r *Renderer) Frame(draw func(game.Renderer)) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// Calculate scale factors to map field coordinates to cells
	r.scaleX = float64(screenW) / game.WindowWidth
	r.scaleY = float64(screenH) / game.WindowHeight
	r.transform = game.TransformNone

	// Draw court background
	bg := tcell.StyleDefault.Background(ToColor(r.palette.Background))
	r.screen.FillRect(0, 0, screenW, screenH, bg, ' ')

	// Draw center dashed line
	centerX := screenW / 2
	lineStyle := bg.Foreground(tcell.ColorDarkGray)
	for y := 0; y < screenH; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, CenterChar)
	}

	draw(r)
	r.screen.Show()
}

func (r *Renderer) SetTransform(t game.Transform) {
	r.transform = t
}

func (r *Renderer) DrawRect(x, y, w, h float64, c color.Color) {
	if r.transform == game.TransformFlipY {
		x, y = game.FlipRect(x, y, w, h)
	}
	col0, row0, cols, rows := r.cells(x, y, w, h)
	style := r.style(c)
	r.screen.FillRect(col0, row0, cols, rows, style, BlockChar)
}

func (r *Renderer) DrawText(s string, x, y float64, size int, c color.Color) {
	if r.transform == game.TransformFlipY {
		y = game.WindowHeight - y
	}
	// The baseline sits on the row containing y
	col := int(x*r.scaleX) - len([]rune(s))/2
	row := int(y * r.scaleY)
	if row > 0 {
		row--
	}
	r.screen.DrawText(col, row, s, r.style(c).Bold(true))
}

// cells maps a top-left rectangle to the cells it touches. Anything that
// has an area gets at least one cell.
func (r *Renderer) cells(x, y, w, h float64) (int, int, int, int) {
	col0 := int(math.Floor(x * r.scaleX))
	row0 := int(math.Floor(y * r.scaleY))
	col1 := int(math.Ceil((x + w) * r.scaleX))
	row1 := int(math.Ceil((y + h) * r.scaleY))

	cols := col1 - col0
	if cols < 1 {
		cols = 1
	}
	rows := row1 - row0
	if rows < 1 {
		rows = 1
	}
	return col0, row0, cols, rows
}

func (r *Renderer) style(c color.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToColor(r.palette.Ink(c))).
		Background(ToColor(r.palette.Background))
}
