//go:build ebiten

package render

import (
	"image/color"

	"lifeboard/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter renders a board into an RGBA buffer and uploads it to a single
// ebiten image.
type GridPainter struct {
	painter *Painter
	surface *ImageSurface
	img     *ebiten.Image
	bg      color.Color
}

// NewGridPainter allocates a painter for a w*h pixel surface.
func NewGridPainter(p *Painter, w, h int, bg color.Color) *GridPainter {
	return &GridPainter{
		painter: p,
		surface: NewImageSurface(w, h),
		img:     ebiten.NewImage(w, h),
		bg:      bg,
	}
}

// Blit clears the buffer, paints g and draws the result onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g life.Grid) {
	gp.surface.Clear(gp.bg)
	gp.painter.Draw(g, gp.surface)
	gp.img.ReplacePixels(gp.surface.Pix())
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}
