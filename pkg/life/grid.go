package life

import (
	"sort"

	"lifeboard/pkg/core"

	"github.com/pkg/errors"
)

// Grid is a fixed-size Life board. Cells outside the board read as dead.
type Grid interface {
	// Size returns the board dimensions.
	Size() core.Size
	// IsAlive reports whether (x, y) is alive. Off-board cells are dead.
	IsAlive(x, y int) bool
	// SetAlive marks (x, y) alive or dead. Off-board writes fail with
	// core.ErrOutOfRange.
	SetAlive(x, y int, alive bool) error
	// CountLiveNeighbors counts alive cells in the Moore neighbourhood of (x, y).
	CountLiveNeighbors(x, y int) int
	// Population returns the number of alive cells.
	Population() int
	// Each calls fn once for every alive cell, in no particular order.
	Each(fn func(core.Coord))
	// Empty returns an all-dead board with the same size and representation.
	Empty() Grid
	// Clone returns an independent copy.
	Clone() Grid
}

// Factory constructs an empty Grid of the given dimensions.
type Factory func(w, h int) Grid

var representations = map[string]Factory{}

// Register adds a grid representation under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	representations[name] = f
}

// Representations lists the registered representation names in sorted order.
func Representations() []string {
	names := make([]string, 0, len(representations))
	for name := range representations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewGrid builds an empty grid using the named representation.
func NewGrid(name string, w, h int) (Grid, error) {
	f, ok := representations[name]
	if !ok {
		return nil, errors.Errorf("unknown grid representation %q", name)
	}
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return f(w, h), nil
}

// Equal reports whether a and b have the same size and alive cells, whatever
// their representations.
func Equal(a, b Grid) bool {
	if a.Size() != b.Size() || a.Population() != b.Population() {
		return false
	}
	same := true
	a.Each(func(c core.Coord) {
		if same && !b.IsAlive(c.X, c.Y) {
			same = false
		}
	})
	return same
}

// Alive returns the alive cells of g sorted row by row.
func Alive(g Grid) []core.Coord {
	cells := make([]core.Coord, 0, g.Population())
	g.Each(func(c core.Coord) { cells = append(cells, c) })
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

// Fill seeds g randomly, marking each cell alive with probability density.
func Fill(g Grid, seed int64, density float64) {
	core.NewRNG(seed).Scatter(g.Size(), density, func(c core.Coord) {
		_ = g.SetAlive(c.X, c.Y, true)
	})
}

type reader interface {
	IsAlive(x, y int) bool
}

func countLiveNeighbors(g reader, x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsAlive(x+dx, y+dy) {
				neighbors++
			}
		}
	}
	return neighbors
}
