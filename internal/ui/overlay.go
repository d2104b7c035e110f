//go:build ebiten

package ui

import (
	"image/color"

	"lifeboard/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional cell grid lines on top of the board.
type Overlay struct {
	board    core.Size
	cellSize int
	show     bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a grid overlay for a board drawn at cellSize.
func NewOverlay(board core.Size, cellSize int) *Overlay {
	o := &Overlay{board: board, cellSize: cellSize}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid on G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.cellSize < 3 {
		return
	}
	col := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	w := float64(o.board.W * o.cellSize)
	h := float64(o.board.H * o.cellSize)
	for x := 1; x < o.board.W; x++ {
		o.drawRect(screen, float64(x*o.cellSize), 0, 1, h, col)
	}
	for y := 1; y < o.board.H; y++ {
		o.drawRect(screen, 0, float64(y*o.cellSize), w, 1, col)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
