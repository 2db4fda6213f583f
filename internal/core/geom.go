// Package core provides fundamental types and utilities for the arcade console.
// It has no external dependencies so that game logic stays pure and testable;
// hosts plug real hardware or terminals in through the capability interfaces.
package core

// Point is a cell on the character grid.
// It may sit transiently off-grid to signal removal or a wall hit.
type Point struct {
	X, Y int
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// In reports whether the point lies inside a w×h grid.
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
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
