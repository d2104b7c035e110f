package life

import (
	"bufio"
	"io"
	"os"
	"strings"

	"lifeboard/pkg/core"

	"github.com/pkg/errors"
)

// Pattern is a set of alive cells relative to its own top-left corner.
type Pattern struct {
	Name  string
	Size  core.Size
	Cells []core.Coord
}

// ParsePattern reads the plaintext .cells format: lines starting with '!' are
// comments, 'O' or '*' marks an alive cell and '.' a dead one.
func ParsePattern(r io.Reader) (Pattern, error) {
	var p Pattern
	sc := bufio.NewScanner(r)
	y := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		for x, ch := range []byte(line) {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, core.Coord{X: x, Y: y})
			case '.':
			default:
				return Pattern{}, errors.Errorf("line %d: unexpected %q", y+1, ch)
			}
		}
		if len(line) > p.Size.W {
			p.Size.W = len(line)
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, errors.Wrap(err, "reading pattern")
	}
	p.Size.H = y
	return p, nil
}

// MustPattern parses a literal pattern and panics on malformed input.
func MustPattern(text string) Pattern {
	p, err := ParsePattern(strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	return p
}

// LoadPattern reads a .cells file from disk.
func LoadPattern(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[LoadPattern] failed to open file: %+v", path)
	}
	defer f.Close()
	p, err := ParsePattern(f)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "[LoadPattern] failed to parse file: %+v", path)
	}
	return p, nil
}

// Stamp marks the pattern's cells alive with its corner at origin. Nothing is
// written when any cell would land off the board.
func Stamp(g Grid, p Pattern, origin core.Coord) error {
	size := g.Size()
	for _, c := range p.Cells {
		if err := size.Check(origin.X+c.X, origin.Y+c.Y); err != nil {
			return errors.Wrapf(err, "stamping %q", p.Name)
		}
	}
	for _, c := range p.Cells {
		_ = g.SetAlive(origin.X+c.X, origin.Y+c.Y, true)
	}
	return nil
}

// Centered returns the origin that places p in the middle of size.
func Centered(size core.Size, p Pattern) core.Coord {
	return core.Coord{X: (size.W - p.Size.W) / 2, Y: (size.H - p.Size.H) / 2}
}
