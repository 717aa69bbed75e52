package elementary

import (
	"wolfram-ca/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Size int
	Rule uint8
}

// Elementary implements a one-dimensional Wolfram code over a lattice with
// permanently dead boundary cells.
type Elementary struct {
	rule uint8
	cur  *core.Lattice
	prev *core.Lattice
}

// New creates an automaton with the given width and rule.
func New(size int, rule uint8) (*Elementary, error) {
	cur, err := core.NewLattice(size)
	if err != nil {
		return nil, err
	}
	prev, err := core.NewLattice(size)
	if err != nil {
		return nil, err
	}
	return &Elementary{rule: rule, cur: cur, prev: prev}, nil
}

// NewWithConfig creates an automaton from cfg.
func NewWithConfig(cfg Config) (*Elementary, error) {
	return New(cfg.Size, cfg.Rule)
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the number of live cells as a single-row grid.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cur.Len(), H: 1} }

// Rule returns the Wolfram rule number.
func (e *Elementary) Rule() uint8 { return e.rule }

// Cells exposes the live cells of the current generation.
func (e *Elementary) Cells() []uint8 { return e.cur.Interior() }

// Lattice exposes the full buffer including both boundary cells.
func (e *Elementary) Lattice() []uint8 { return e.cur.Cells() }

// Reset clears the lattice and fills every live cell with a random 0 or 1.
func (e *Elementary) Reset(seed int64) {
	e.cur.Clear()
	e.prev.Clear()
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, e.cur.Interior())
}

// Step computes the next generation from a snapshot of the current one.
func (e *Elementary) Step() {
	e.prev.CopyFrom(e.cur)
	src := e.prev.Cells()
	dst := e.cur.Cells()
	for i := 1; i <= e.cur.Len(); i++ {
		dst[i] = Next(e.rule, src[i-1], src[i], src[i+1])
	}
}

// Next returns the state of a cell whose neighbourhood is (left, center,
// right). The rule number is the lookup table: bit n holds the output for
// the pattern whose left-center-right bits spell n.
func Next(rule, left, center, right uint8) uint8 {
	idx := (left&1)<<2 | (center&1)<<1 | right&1
	return (rule >> idx) & 1
}
