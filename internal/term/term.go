// Package term runs a Session in a terminal. Each board cell takes two columns
// so cells look square; the status line sits under the board.
package term

import (
	"context"
	"image/color"
	"time"

	"lifeboard/internal/render"
	"lifeboard/internal/session"
	"lifeboard/internal/ui"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const (
	cellGlyph = '█'
	frameRate = 16 * time.Millisecond
)

// Frontend binds a tcell screen to a Session.
type Frontend struct {
	screen  tcell.Screen
	sess    *session.Session
	painter *render.Painter
	seed    int64
}

// New returns a frontend drawing sess onto an initialised screen.
func New(screen tcell.Screen, sess *session.Session, seed int64) *Frontend {
	p := render.NewPainter(1)
	p.Color = color.RGBA{R: 80, G: 200, B: 90, A: 255}
	screen.EnableMouse()
	screen.HideCursor()
	return &Frontend{screen: screen, sess: sess, painter: p, seed: seed}
}

// Run pumps screen events into a single owner loop until the user quits or ctx
// ends. Run takes ownership of the screen and finalises it before returning.
func (f *Frontend) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event)
	done := make(chan struct{})

	g.Go(func() error {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})
	g.Go(func() error {
		defer f.screen.Fini()
		defer close(done)
		return f.loop(ctx, events)
	})
	return g.Wait()
}

func (f *Frontend) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if f.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			f.sess.Update()
		}
		f.Draw()
	}
}

// Handle applies one screen event to the session and reports whether the
// user asked to quit.
func (f *Frontend) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			f.sess.ToggleRunning()
		case 'w', 'W':
			f.sess.Step()
		case 'r', 'R':
			f.sess.Reset(f.seed)
		case 'c', 'C':
			f.sess.Clear()
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := col/2, row
		if !f.sess.Size().Contains(x, y) {
			return false
		}
		cs := f.sess.CellSize()
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.ButtonPrimary != 0:
			f.sess.Paint(x*cs, y*cs, true)
		case buttons&tcell.ButtonSecondary != 0:
			f.sess.Paint(x*cs, y*cs, false)
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

// Draw clears the screen, paints the current frame and the status line.
func (f *Frontend) Draw() {
	f.screen.Clear()
	f.painter.Draw(f.sess.Frame(), screenSurface{f.screen})
	status := ui.StatusLine(f.sess) + "  [space] run  [w] step  [q] quit"
	row := f.sess.Size().H
	for i, r := range status {
		f.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
	f.screen.Show()
}

// screenSurface maps one surface unit to two terminal columns.
type screenSurface struct {
	screen tcell.Screen
}

func (s screenSurface) FillRect(x, y, w, h int, c color.Color) {
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(c))
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(2*col, row, cellGlyph, nil, style)
			s.screen.SetContent(2*col+1, row, cellGlyph, nil, style)
		}
	}
}
