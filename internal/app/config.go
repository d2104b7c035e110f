package app

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/session"
	pkgcore "lifeboard/pkg/core"
	"lifeboard/pkg/life"

	"github.com/pkg/errors"
)

// Duration is a time.Duration that reads from JSON as "100ms" style strings.
type Duration time.Duration

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "invalid duration %q", s)
		}
		*d = Duration(parsed)
		return nil
	}
	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return errors.Errorf("invalid duration %s", b)
	}
	*d = Duration(ns)
	return nil
}

// Config represents the command-line parameters shared by both frontends.
type Config struct {
	File string `json:"-"`

	Size     int      `json:"size"`
	CellSize int      `json:"cell_size"`
	Interval Duration `json:"interval"`
	Scale    int      `json:"scale"`
	Seed     int64    `json:"seed"`
	Density  float64  `json:"density"`
	Repr     string   `json:"repr"`
	Rule     string   `json:"rule"`
	Pattern  string   `json:"pattern"`
	Verbose  bool     `json:"verbose"`
}

// NewConfig returns a Config populated with the reference board: a 200 unit
// surface of 4 unit cells ticking every 100ms.
func NewConfig() *Config {
	return &Config{
		Size:     200,
		CellSize: 4,
		Interval: Duration(session.DefaultInterval),
		Scale:    3,
		Seed:     42,
		Repr:     "sparse",
		Rule:     life.Conway.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "JSON config file; flags override its values")
	fs.IntVar(&c.Size, "size", c.Size, "surface width and height in units")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in units")
	fs.DurationVar((*time.Duration)(&c.Interval), "interval", time.Duration(c.Interval), "delay between generations")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per unit")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after a random fill (0 starts empty)")
	fs.StringVar(&c.Repr, "repr", c.Repr, "grid representation: sparse or dense")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "plaintext .cells pattern to place at the centre")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log tick and draw timings")
}

// Parse reads args into c. When -config names a file its values are applied
// and args are parsed again so explicit flags win.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return nil
	}
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	return fs.Parse(args)
}

// LoadFile overlays the JSON object in path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Board returns the board dimensions in cells.
func (c *Config) Board() pkgcore.Size {
	n := c.Size / c.CellSize
	return pkgcore.Size{W: n, H: n}
}

// Validate reports the first setting that cannot produce a board.
func (c *Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Size < c.CellSize:
		return errors.Errorf("surface size %d smaller than one cell of %d", c.Size, c.CellSize)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.Interval <= 0:
		return errors.Errorf("interval must be positive, got %s", time.Duration(c.Interval))
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density must be within [0,1], got %g", c.Density)
	}
	if _, err := life.ParseRule(c.Rule); err != nil {
		return err
	}
	if _, err := life.NewGrid(c.Repr, 1, 1); err != nil {
		return err
	}
	return nil
}

// NewSession builds the board described by c: random fill first, then the
// pattern stamped over it.
func (c *Config) NewSession(sched *core.Scheduler, logger *log.Logger) (*session.Session, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	rule, _ := life.ParseRule(c.Rule)
	board := c.Board()
	grid, err := life.NewGrid(c.Repr, board.W, board.H)
	if err != nil {
		return nil, err
	}
	if c.Density > 0 {
		life.Fill(grid, c.Seed, c.Density)
	}
	if c.Pattern != "" {
		p, err := life.LoadPattern(c.Pattern)
		if err != nil {
			return nil, err
		}
		if err := life.Stamp(grid, p, life.Centered(board, p)); err != nil {
			return nil, err
		}
	}
	if !c.Verbose {
		logger = nil
	}
	return session.New(grid, sched, session.Options{
		Rule:     &rule,
		CellSize: c.CellSize,
		Interval: time.Duration(c.Interval),
		Density:  c.Density,
		Logger:   logger,
	}), nil
}
