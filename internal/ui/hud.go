//go:build ebiten

package ui

import (
	"image/color"

	"lifeboard/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status strip over the top of the board.
type HUD struct {
	sess    *session.Session
	pixel   *ebiten.Image
	visible bool
	line    string
}

// NewHUD constructs a HUD for the provided session.
func NewHUD(sess *session.Session) *HUD {
	h := &HUD{sess: sess, visible: true}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update toggles visibility on H and refreshes the status text.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.line = StatusLine(h.sess)
}

// Draw paints the strip anchored to the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.line == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, h.line)
	width := bounds.Dx() + 2*panelPadding
	height := stripHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), float64(height))
	op.ColorM.Scale(16.0/255.0, 16.0/255.0, 20.0/255.0, 180.0/255.0)
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, h.line, face, panelPadding, textBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

const (
	panelPadding = 3
	stripHeight  = 16
	textBaseline = 12
)
