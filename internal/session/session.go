// Package session owns one interactive Life board: its grid, rule, cell size
// and repeating-tick handle. Frontends translate input into Session calls and
// draw Frame; every call must come from the frontend's single owner goroutine.
package session

import (
	"io"
	"log"
	"time"

	"lifeboard/internal/core"
	pkgcore "lifeboard/pkg/core"
	"lifeboard/pkg/life"
)

const (
	// DefaultInterval is the delay between generations while running.
	DefaultInterval = 100 * time.Millisecond
	// DefaultDensity is the fill fraction used by Reset when none is configured.
	DefaultDensity = 0.25
)

// Options configures a Session.
type Options struct {
	// Rule defaults to life.Conway when nil.
	Rule     *life.Rule
	CellSize int
	Interval time.Duration
	Density  float64
	Logger   *log.Logger
}

// Session is the explicit owner of a board and its timer.
type Session struct {
	grid  life.Grid
	frame life.Grid

	rule     life.Rule
	cellSize int
	interval time.Duration
	density  float64

	sched *core.Scheduler
	timer *core.Interval

	generation int
	log        *log.Logger
}

// New wraps grid in a Session driven by sched.
func New(grid life.Grid, sched *core.Scheduler, opts Options) *Session {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Density <= 0 {
		opts.Density = DefaultDensity
	}
	rule := life.Conway
	if opts.Rule != nil {
		rule = *opts.Rule
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if sched == nil {
		sched = core.NewScheduler(nil)
	}
	return &Session{
		grid:     grid,
		frame:    grid,
		rule:     rule,
		cellSize: opts.CellSize,
		interval: opts.Interval,
		density:  opts.Density,
		sched:    sched,
		log:      opts.Logger,
	}
}

// Grid returns the current generation.
func (s *Session) Grid() life.Grid { return s.grid }

// Frame returns the generation that should be on screen. While running it
// trails Grid by one tick.
func (s *Session) Frame() life.Grid { return s.frame }

// Size returns the board dimensions.
func (s *Session) Size() pkgcore.Size { return s.grid.Size() }

// CellSize returns the side of one cell in surface units.
func (s *Session) CellSize() int { return s.cellSize }

// Rule returns the transition rule in use.
func (s *Session) Rule() life.Rule { return s.rule }

// Generation counts the ticks applied since the board was last reset.
func (s *Session) Generation() int { return s.generation }

// Population returns the number of alive cells in the current generation.
func (s *Session) Population() int { return s.grid.Population() }

// Running reports whether the repeating tick is active.
func (s *Session) Running() bool { return s.timer != nil }

// CellAt maps a surface position to a board cell, clamping to the board.
func (s *Session) CellAt(px, py int) pkgcore.Coord {
	return s.Size().Clamp(floorDiv(px, s.cellSize), floorDiv(py, s.cellSize))
}

// Paint sets the cell under (px, py) to alive and redraws. While running,
// the redraw shows the already advanced grid, as a click did in the browser.
// It reports whether anything changed; painting a cell already in the target
// state is a no-op.
func (s *Session) Paint(px, py int, alive bool) bool {
	c := s.CellAt(px, py)
	if s.grid.IsAlive(c.X, c.Y) == alive {
		return false
	}
	if err := s.grid.SetAlive(c.X, c.Y, alive); err != nil {
		s.log.Printf("paint (%d,%d): %v", px, py, err)
		return false
	}
	s.redraw()
	return true
}

// Toggle flips the cell at board coordinates (x, y).
func (s *Session) Toggle(x, y int) error {
	if err := s.grid.SetAlive(x, y, !s.grid.IsAlive(x, y)); err != nil {
		return err
	}
	s.redraw()
	return nil
}

// ToggleRunning stops a running board or starts a stopped one, and returns
// the new state. It never leaves two timers active.
func (s *Session) ToggleRunning() bool {
	if s.Running() {
		s.Stop()
		return false
	}
	s.Start()
	return true
}

// Start begins ticking. Any active timer is cancelled first.
func (s *Session) Start() {
	s.Stop()
	s.timer = s.sched.Every(s.interval, s.tick)
}

// Stop cancels the repeating tick if there is one.
func (s *Session) Stop() {
	if s.timer == nil {
		return
	}
	s.timer.Stop()
	s.timer = nil
}

// Step advances one generation and shows it.
func (s *Session) Step() {
	s.advance()
	s.redraw()
}

// Update gives the scheduler a chance to run a due tick. Frontends call it
// once per loop iteration.
func (s *Session) Update() { s.sched.Advance() }

// Clear kills every cell and resets the generation counter.
func (s *Session) Clear() {
	s.grid = s.grid.Empty()
	s.generation = 0
	s.redraw()
}

// Reset replaces the board with a random one at the configured density.
func (s *Session) Reset(seed int64) {
	g := s.grid.Empty()
	life.Fill(g, seed, s.density)
	s.grid = g
	s.generation = 0
	s.redraw()
}

// tick shows the current generation, then advances past it.
func (s *Session) tick() {
	s.frame = s.grid
	s.advance()
}

func (s *Session) advance() {
	start := time.Now()
	s.grid = s.rule.Next(s.grid)
	s.generation++
	s.log.Printf("tick %d took %s", s.generation, time.Since(start))
}

func (s *Session) redraw() { s.frame = s.grid }

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
