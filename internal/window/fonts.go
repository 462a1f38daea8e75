package window

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces caches one font face per text size
type Faces struct {
	font  *truetype.Font
	faces map[int]font.Face
}

// LoadFaces parses the bundled Go Regular font
func LoadFaces() (*Faces, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Faces{font: f, faces: make(map[int]font.Face)}, nil
}

// Get returns the face for size, creating it on first use
func (f *Faces) Get(size int) font.Face {
	face, ok := f.faces[size]
	if !ok {
		face = truetype.NewFace(f.font, &truetype.Options{Size: float64(size)})
		f.faces[size] = face
	}
	return face
}
