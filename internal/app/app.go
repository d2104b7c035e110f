//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log"
	"time"

	"lifeboard/internal/render"
	"lifeboard/internal/session"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	sess    *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	bounds  image.Rectangle

	seed    int64
	verbose bool
	log     *log.Logger
}

// New constructs a Game for the provided session.
func New(sess *session.Session, seed int64, logger *log.Logger) *Game {
	p := render.NewPainter(sess.CellSize())
	w, h := p.SurfaceSize(sess.Size())
	return &Game{
		sess:    sess,
		painter: render.NewGridPainter(p, w, h, color.White),
		hud:     ui.NewHUD(sess),
		overlay: ui.NewOverlay(sess.Size(), sess.CellSize()),
		bounds:  image.Rect(0, 0, w, h),
		seed:    seed,
		verbose: logger != nil,
		log:     logger,
	}
}

// Update handles input and lets the session run a due tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sess.ToggleRunning()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.sess.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sess.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sess.Clear()
	}

	mx, my := ebiten.CursorPosition()
	if image.Pt(mx, my).In(g.bounds) {
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			g.sess.Paint(mx, my, true)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			g.sess.Paint(mx, my, false)
		}
	}

	g.overlay.Update()
	g.hud.Update()
	g.sess.Update()
	return nil
}

// Draw renders the session's current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.painter.Blit(screen, g.sess.Frame())
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
	if g.verbose {
		g.log.Printf("draw took %s", time.Since(start))
	}
}

// Layout returns the logical screen size: the board surface in units.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.bounds.Dx(), g.bounds.Dy()
}
