package core

import "github.com/pkg/errors"

// ErrOutOfRange reports a coordinate outside the board.
var ErrOutOfRange = errors.New("coordinate out of range")

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside [0,W)x[0,H).
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.W && y >= 0 && y < s.H
}

// Cells returns the number of positions on the board.
func (s Size) Cells() int { return s.W * s.H }

// Clamp pulls (x, y) onto the nearest in-bounds coordinate.
func (s Size) Clamp(x, y int) Coord {
	return Coord{X: clampInt(x, 0, s.W-1), Y: clampInt(y, 0, s.H-1)}
}

// Check returns an error wrapping ErrOutOfRange when (x, y) is off the board.
func (s Size) Check(x, y int) error {
	if s.Contains(x, y) {
		return nil
	}
	return errors.Wrapf(ErrOutOfRange, "given x = %d, y = %d, board %dx%d", x, y, s.W, s.H)
}

// Coord identifies a single cell.
type Coord struct {
	X int
	Y int
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
