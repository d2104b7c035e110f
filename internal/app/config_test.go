package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifeboard/internal/core"
	pkgcore "lifeboard/pkg/core"
	"lifeboard/pkg/life"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsDescribeReferenceBoard(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := cfg.Board(); got != (pkgcore.Size{W: 50, H: 50}) {
		t.Fatalf("board = %+v, want 50x50", got)
	}
	if time.Duration(cfg.Interval) != 100*time.Millisecond {
		t.Fatalf("interval = %v", time.Duration(cfg.Interval))
	}
}

func TestParseFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	err := cfg.Parse(fs, []string{"-size", "120", "-cell", "6", "-interval", "250ms", "-repr", "dense", "-rule", "B36/S23"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board() != (pkgcore.Size{W: 20, H: 20}) || cfg.Repr != "dense" || cfg.Rule != "B36/S23" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if time.Duration(cfg.Interval) != 250*time.Millisecond {
		t.Fatalf("interval = %v", time.Duration(cfg.Interval))
	}
}

func TestParseConfigFileThenFlags(t *testing.T) {
	path := writeFile(t, "life.json", `{"size": 80, "cell_size": 8, "interval": "50ms", "seed": 7, "density": 0.3}`)
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := cfg.Parse(fs, []string{"-config", path, "-seed", "99"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 80 || cfg.CellSize != 8 || cfg.Density != 0.3 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if time.Duration(cfg.Interval) != 50*time.Millisecond {
		t.Fatalf("interval = %v", time.Duration(cfg.Interval))
	}
	if cfg.Seed != 99 {
		t.Fatalf("flag should override file seed, got %d", cfg.Seed)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing file should fail")
	}
	if err := cfg.LoadFile(writeFile(t, "bad.json", `{"interval": "soon"}`)); err == nil {
		t.Fatal("bad duration should fail")
	}
	if err := cfg.LoadFile(writeFile(t, "ns.json", `{"interval": 2000000}`)); err != nil {
		t.Fatal(err)
	}
	if time.Duration(cfg.Interval) != 2*time.Millisecond {
		t.Fatalf("interval = %v", time.Duration(cfg.Interval))
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"cell":     func(c *Config) { c.CellSize = 0 },
		"size":     func(c *Config) { c.Size = 3 },
		"scale":    func(c *Config) { c.Scale = 0 },
		"interval": func(c *Config) { c.Interval = 0 },
		"density":  func(c *Config) { c.Density = 1.5 },
		"rule":     func(c *Config) { c.Rule = "B9/S23" },
		"repr":     func(c *Config) { c.Repr = "quadtree" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestNewSessionStampsPattern(t *testing.T) {
	cfg := NewConfig()
	cfg.Size = 40
	cfg.CellSize = 4
	cfg.Repr = "dense"
	cfg.Pattern = writeFile(t, "blinker.cells", "!Name: Blinker\nOOO\n")

	s, err := cfg.NewSession(core.NewScheduler(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []pkgcore.Coord{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}}
	got := life.Alive(s.Grid())
	if len(got) != len(want) {
		t.Fatalf("alive = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("alive = %v, want %v", got, want)
		}
	}
	if s.CellSize() != 4 {
		t.Fatalf("cell size = %d", s.CellSize())
	}
}

func TestNewSessionRandomFill(t *testing.T) {
	cfg := NewConfig()
	cfg.Density = 0.5
	a, err := cfg.NewSession(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := cfg.NewSession(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Population() == 0 || !life.Equal(a.Grid(), b.Grid()) {
		t.Fatal("same seed should give the same non-empty board")
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Pattern = filepath.Join(t.TempDir(), "missing.cells")
	if _, err := cfg.NewSession(nil, nil); err == nil {
		t.Fatal("missing pattern should fail")
	}
	cfg = NewConfig()
	cfg.Rule = "nonsense"
	if _, err := cfg.NewSession(nil, nil); err == nil {
		t.Fatal("bad rule should fail")
	}
}

func TestNewSessionKeepsConfiguredRule(t *testing.T) {
	for _, rule := range []string{"B/S", "B36/S23", "B3/S23"} {
		cfg := NewConfig()
		cfg.Rule = rule
		s, err := cfg.NewSession(nil, nil)
		if err != nil {
			t.Fatalf("%s: %v", rule, err)
		}
		if got := s.Rule().String(); got != rule {
			t.Fatalf("configured %s, session runs %s", rule, got)
		}
	}
}

func TestNewSessionEmptyRuleKillsEverything(t *testing.T) {
	cfg := NewConfig()
	cfg.Rule = "B/S"
	cfg.Density = 0.5
	s, err := cfg.NewSession(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Step()
	if s.Population() != 0 {
		t.Fatalf("B/S left %d cells alive", s.Population())
	}
}
