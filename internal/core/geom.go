// Package core provides fundamental types and utilities shared by the game
// logic and its frontends. It has no UI dependencies (no Bubble Tea, no
// ebiten) so the simulation stays pure and testable.
package core

// Rect represents an axis-aligned box in integer screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Span is a one-dimensional interval [Min, Max] in world units.
type Span struct {
	Min, Max float64
}

// NewSpan returns the span starting at pos with the given length.
func NewSpan(pos, length float64) Span {
	return Span{Min: pos, Max: pos + length}
}

// Overlaps reports whether the open interiors of two spans intersect.
// Spans that only touch at an edge do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Max > other.Min && s.Min < other.Max
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
