package term

import (
	"context"
	"testing"
	"time"

	"lifeboard/internal/session"
	"lifeboard/pkg/life"

	"github.com/gdamore/tcell/v2"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen, *session.Session) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(40, 20)
	sess := session.New(life.NewSparse(10, 10), nil, session.Options{CellSize: 4})
	return New(screen, sess, 1), screen, sess
}

func TestDrawPaintsTwoColumnsPerCell(t *testing.T) {
	f, screen, sess := newTestFrontend(t)
	defer screen.Fini()
	if err := sess.Toggle(3, 2); err != nil {
		t.Fatal(err)
	}
	f.Draw()

	for _, col := range []int{6, 7} {
		if r, _, _, _ := screen.GetContent(col, 2); r != cellGlyph {
			t.Fatalf("column %d row 2 = %q, want cell glyph", col, r)
		}
	}
	if r, _, _, _ := screen.GetContent(8, 2); r == cellGlyph {
		t.Fatal("dead neighbour painted")
	}
	if r, _, _, _ := screen.GetContent(0, 10); r != 'g' {
		t.Fatalf("status line missing, got %q", r)
	}
}

func TestHandleKeys(t *testing.T) {
	f, screen, sess := newTestFrontend(t)
	defer screen.Fini()

	if f.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) || !sess.Running() {
		t.Fatal("space should start the board")
	}
	f.Handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if sess.Running() {
		t.Fatal("second space should stop the board")
	}
	f.Handle(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if sess.Generation() != 1 {
		t.Fatalf("w should step once, generation = %d", sess.Generation())
	}
	if !f.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !f.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestHandleMouse(t *testing.T) {
	f, screen, sess := newTestFrontend(t)
	defer screen.Fini()

	f.Handle(tcell.NewEventMouse(9, 4, tcell.ButtonPrimary, tcell.ModNone))
	if !sess.Grid().IsAlive(4, 4) {
		t.Fatal("left button should spawn the cell under the pointer")
	}
	f.Handle(tcell.NewEventMouse(8, 4, tcell.ButtonPrimary, tcell.ModNone))
	if sess.Population() != 1 {
		t.Fatalf("repeat press must be idempotent, population = %d", sess.Population())
	}
	f.Handle(tcell.NewEventMouse(8, 4, tcell.ButtonSecondary, tcell.ModNone))
	if sess.Population() != 0 {
		t.Fatal("right button should kill the cell")
	}
	f.Handle(tcell.NewEventMouse(30, 15, tcell.ButtonPrimary, tcell.ModNone))
	if sess.Population() != 0 {
		t.Fatal("presses outside the board are ignored")
	}
}

func TestRunQuits(t *testing.T) {
	f, screen, _ := newTestFrontend(t)

	errc := make(chan error, 1)
	go func() { errc <- f.Run(context.Background()) }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _, _ := newTestFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
