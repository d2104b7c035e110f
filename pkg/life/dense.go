package life

import "lifeboard/pkg/core"

// Dense stores one byte per cell in row-major order. Suited to small boards
// where flat iteration matters more than memory.
type Dense struct {
	size  core.Size
	cells []uint8
	pop   int
}

// NewDense allocates a dead board with the given dimensions.
func NewDense(w, h int) *Dense {
	return &Dense{size: core.Size{W: w, H: h}, cells: make([]uint8, w*h)}
}

// Size returns the board dimensions.
func (d *Dense) Size() core.Size { return d.size }

// Index returns the linear slice index for coordinates (x, y).
func (d *Dense) Index(x, y int) int { return y*d.size.W + x }

// IsAlive reports whether (x, y) is alive.
func (d *Dense) IsAlive(x, y int) bool {
	if !d.size.Contains(x, y) {
		return false
	}
	return d.cells[d.Index(x, y)] == 1
}

// SetAlive writes the cell at (x, y).
func (d *Dense) SetAlive(x, y int, alive bool) error {
	if err := d.size.Check(x, y); err != nil {
		return err
	}
	idx := d.Index(x, y)
	was := d.cells[idx] == 1
	switch {
	case alive && !was:
		d.cells[idx] = 1
		d.pop++
	case !alive && was:
		d.cells[idx] = 0
		d.pop--
	}
	return nil
}

// CountLiveNeighbors counts alive Moore neighbours of (x, y).
func (d *Dense) CountLiveNeighbors(x, y int) int { return countLiveNeighbors(d, x, y) }

// Population returns the number of alive cells.
func (d *Dense) Population() int { return d.pop }

// Each visits alive cells row by row.
func (d *Dense) Each(fn func(core.Coord)) {
	for i, c := range d.cells {
		if c == 1 {
			fn(core.Coord{X: i % d.size.W, Y: i / d.size.W})
		}
	}
}

// Empty returns a dead dense board of the same size.
func (d *Dense) Empty() Grid { return NewDense(d.size.W, d.size.H) }

// Clone copies the cell buffer.
func (d *Dense) Clone() Grid {
	cells := make([]uint8, len(d.cells))
	copy(cells, d.cells)
	return &Dense{size: d.size, cells: cells, pop: d.pop}
}

func init() {
	Register("dense", func(w, h int) Grid { return NewDense(w, h) })
}
