package game

import (
	"image/color"
	"time"
)

// Playfield and object dimensions in logical units
const (
	WindowWidth     = 1000.0
	WindowHeight    = 500.0
	PaddleWidth     = 20.0
	PaddleHeight    = 50.0
	PaddleBorderGap = 50.0 // Distance between a paddle and its own side of the window
	BallWidth       = 10.0
	BallHeight      = 10.0
)

// Motion tuning
const (
	PaddleSpeed       = 225.0 // Units per second while a direction is held
	StartBallVelocity = 200.0 // Initial |VX|, and the range bound for VY
	BallMultiplier    = 1.1   // |VX| growth per paddle hit
)

// Round lifecycle and text layout
const (
	CountdownDuration = 3 * time.Second
	ScoreSize         = 30
	ScoreYGap         = 50.0 // Text is anchored at its baseline
	CountdownSize     = 30
)

var (
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.RGBA{A: 0xff}
)

// Field returns the vertical extent of the playfield
func Field() Bounds {
	return Bounds{Lower: 0, Upper: WindowHeight}
}
