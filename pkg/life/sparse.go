package life

import (
	"lifeboard/pkg/core"

	"github.com/zyedidia/generic/mapset"
)

// Sparse stores only the alive coordinates. Suited to mostly-dead boards.
type Sparse struct {
	size  core.Size
	alive mapset.Set[core.Coord]
}

// NewSparse returns an empty sparse board.
func NewSparse(w, h int) *Sparse {
	return &Sparse{size: core.Size{W: w, H: h}, alive: mapset.New[core.Coord]()}
}

// Size returns the board dimensions.
func (s *Sparse) Size() core.Size { return s.size }

// IsAlive reports whether (x, y) is in the alive set.
func (s *Sparse) IsAlive(x, y int) bool {
	if !s.size.Contains(x, y) {
		return false
	}
	return s.alive.Has(core.Coord{X: x, Y: y})
}

// SetAlive adds or removes (x, y) from the alive set.
func (s *Sparse) SetAlive(x, y int, alive bool) error {
	if err := s.size.Check(x, y); err != nil {
		return err
	}
	c := core.Coord{X: x, Y: y}
	if alive {
		s.alive.Put(c)
	} else {
		s.alive.Remove(c)
	}
	return nil
}

// CountLiveNeighbors counts alive Moore neighbours of (x, y).
func (s *Sparse) CountLiveNeighbors(x, y int) int { return countLiveNeighbors(s, x, y) }

// Population returns the size of the alive set.
func (s *Sparse) Population() int { return s.alive.Size() }

// Each visits the alive set.
func (s *Sparse) Each(fn func(core.Coord)) { s.alive.Each(fn) }

// Empty returns a dead sparse board of the same size.
func (s *Sparse) Empty() Grid { return NewSparse(s.size.W, s.size.H) }

// Clone copies the alive set.
func (s *Sparse) Clone() Grid {
	c := NewSparse(s.size.W, s.size.H)
	s.alive.Each(c.alive.Put)
	return c
}

func init() {
	Register("sparse", func(w, h int) Grid { return NewSparse(w, h) })
}
