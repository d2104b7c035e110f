package life

import (
	"strings"

	"github.com/pkg/errors"
)

// Rule is a life-like transition rule. Bit n of Birth is set when a dead cell
// with n live neighbours is born; bit n of Survive when a live cell with n
// neighbours stays alive.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the classical B3/S23 rule.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// NextGeneration applies Conway's rule to g.
func NextGeneration(g Grid) Grid { return Conway.Next(g) }

// Alive reports the next state of a cell given its current state and neighbour count.
func (r Rule) Alive(alive bool, neighbors int) bool {
	if neighbors < 0 || neighbors > 8 {
		return false
	}
	if alive {
		return r.Survive&(1<<neighbors) != 0
	}
	return r.Birth&(1<<neighbors) != 0
}

// Next computes the following generation into a fresh grid. Every cell is
// evaluated against g, which is never written.
func (r Rule) Next(g Grid) Grid {
	next := g.Empty()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if r.Alive(g.IsAlive(x, y), g.CountLiveNeighbors(x, y)) {
				_ = next.SetAlive(x, y, true)
			}
		}
	}
	return next
}

// String renders the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}

// ParseRule reads a rule in B/S notation. Halves may appear in either order
// and letters are case-insensitive: "B3/S23", "s23/b3" and "B36/S23" are valid.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return Rule{}, errors.Errorf("rule %q: want B<digits>/S<digits>", s)
	}
	var (
		r            Rule
		seenB, seenS bool
	)
	for _, part := range parts {
		if part == "" {
			return Rule{}, errors.Errorf("rule %q: empty half", s)
		}
		mask, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, errors.Wrapf(err, "rule %q", s)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return Rule{}, errors.Errorf("rule %q: birth given twice", s)
			}
			seenB = true
			r.Birth = mask
		case 'S', 's':
			if seenS {
				return Rule{}, errors.Errorf("rule %q: survival given twice", s)
			}
			seenS = true
			r.Survive = mask
		default:
			return Rule{}, errors.Errorf("rule %q: half %q must start with B or S", s, part)
		}
	}
	return r, nil
}

func parseCounts(digits string) (uint16, error) {
	var mask uint16
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return 0, errors.Errorf("neighbour count %q not in 0-8", ch)
		}
		mask |= 1 << (ch - '0')
	}
	return mask, nil
}
