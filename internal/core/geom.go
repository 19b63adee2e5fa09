// Package core provides fundamental types and utilities shared by the game and
// the terminal platform. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
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

// Clip returns the part of r inside bounds. The result is empty (zero W or H)
// when they do not overlap.
func (r Rect) Clip(bounds Rect) Rect {
	left := Max(r.X, bounds.X)
	top := Max(r.Y, bounds.Y)
	right := Min(r.Right(), bounds.Right())
	bottom := Min(r.Bottom(), bounds.Bottom())
	return Rect{X: left, Y: top, W: Max(right-left, 0), H: Max(bottom-top, 0)}
}

// RectSpan returns the smallest integer rectangle covering the span
// [x0, x1) x [y0, y1) given in fractional cell coordinates.
func RectSpan(x0, y0, x1, y1 float64) Rect {
	left := int(math.Floor(x0))
	top := int(math.Floor(y0))
	right := int(math.Ceil(x1))
	bottom := int(math.Ceil(y1))
	return Rect{X: left, Y: top, W: Max(right-left, 0), H: Max(bottom-top, 0)}
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
