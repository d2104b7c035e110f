package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ImageSurface paints into an in-memory RGBA image.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a transparent w*h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FillRect paints a solid rectangle, clipped to the surface.
func (s *ImageSurface) FillRect(x, y, w, h int, c color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// Clear fills the whole surface with c.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Pix exposes the raw RGBA bytes in row-major order.
func (s *ImageSurface) Pix() []byte { return s.img.Pix }
