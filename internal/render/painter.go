package render

import (
	"image/color"

	"lifeboard/pkg/core"
	"lifeboard/pkg/life"
)

// DefaultColor is the fill used for alive cells when none is configured.
var DefaultColor color.Color = color.Black

// Surface is anything alive cells can be painted onto.
type Surface interface {
	FillRect(x, y, w, h int, c color.Color)
}

// Painter draws alive cells as CellSize squares.
type Painter struct {
	CellSize int
	Color    color.Color
	// ColorAt overrides Color per cell when set.
	ColorAt func(core.Coord) color.Color
}

// NewPainter returns a painter using DefaultColor.
func NewPainter(cellSize int) *Painter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Painter{CellSize: cellSize, Color: DefaultColor}
}

// Draw paints every alive cell of g at (x*CellSize, y*CellSize). Dead cells are
// left untouched; clearing the surface first is up to the caller.
func (p *Painter) Draw(g life.Grid, dst Surface) {
	size := p.CellSize
	g.Each(func(c core.Coord) {
		dst.FillRect(c.X*size, c.Y*size, size, size, p.colorFor(c))
	})
}

// SurfaceSize returns the pixel extent of a board drawn at CellSize.
func (p *Painter) SurfaceSize(board core.Size) (int, int) {
	return board.W * p.CellSize, board.H * p.CellSize
}

func (p *Painter) colorFor(c core.Coord) color.Color {
	if p.ColorAt != nil {
		if col := p.ColorAt(c); col != nil {
			return col
		}
	}
	if p.Color == nil {
		return DefaultColor
	}
	return p.Color
}
