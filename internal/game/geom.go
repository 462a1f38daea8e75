package game

// Box is an axis-aligned rectangle anchored at its lower-left corner in logical coordinates
type Box struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether two boxes intersect. Touching edges count.
func (b Box) Overlaps(o Box) bool {
	return BoxesOverlap(b.X, b.Y, b.W, b.H, o.X, o.Y, o.W, o.H)
}

// BoxesOverlap is the inclusive AABB test. The result does not depend on argument order.
func BoxesOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax <= bx+bw && ax+aw >= bx && ay <= by+bh && ay+ah >= by
}

// Bounds is a closed vertical range
type Bounds struct {
	Lower, Upper float64
}

// Shrink returns the bounds with the upper edge lowered by size,
// so a body of that height stays fully inside.
func (b Bounds) Shrink(size float64) Bounds {
	return Bounds{Lower: b.Lower, Upper: b.Upper - size}
}

// Clamp restricts v to [Lower, Upper]
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Lower {
		return b.Lower
	}
	if v > b.Upper {
		return b.Upper
	}
	return v
}
