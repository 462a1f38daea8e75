package game

import "image/color"

// Transform tells a Renderer how to map logical coordinates onto its surface
type Transform int

const (
	// TransformNone draws with the origin at the top left, y growing downwards
	TransformNone Transform = iota
	// TransformFlipY draws with the origin at the bottom left, y growing upwards.
	// Rectangles keep (x, y) as their lower-left corner.
	TransformFlipY
)

// Renderer is the drawing surface the game renders onto. Coordinates are
// logical units on a WindowWidth x WindowHeight field.
type Renderer interface {
	SetTransform(t Transform)
	DrawRect(x, y, w, h float64, c color.Color)
	// DrawText draws s horizontally centred on x with its baseline at y
	DrawText(s string, x, y float64, size int, c color.Color)
}

// FlipRect converts a rectangle given with a lower-left origin into the
// top-left corner used by TransformNone
func FlipRect(x, y, w, h float64) (float64, float64) {
	return x, WindowHeight - y - h
}

// Palette lets a frontend swap the default white-on-black colours
type Palette struct {
	Foreground color.Color
	Background color.Color
}

func DefaultPalette() Palette {
	return Palette{Foreground: White, Background: Black}
}

// Ink maps a colour drawn by the game onto the palette
func (p Palette) Ink(c color.Color) color.Color {
	if c == color.Color(White) && p.Foreground != nil {
		return p.Foreground
	}
	return c
}
