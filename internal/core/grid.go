package core

import (
	"errors"
	"fmt"
)

// MaxLatticeSize bounds the number of live cells a Lattice may hold.
const MaxLatticeSize = 1<<16 - 1

// ErrLatticeTooLarge is returned when the requested width exceeds MaxLatticeSize.
var ErrLatticeTooLarge = errors.New("lattice too large")

// Lattice stores a row of byte-sized cells padded by one dead boundary cell
// on each side. Index 0 and index Len()+1 are never written after allocation.
type Lattice struct {
	n    int
	data []uint8
}

// NewLattice allocates a lattice with n live cells. Negative widths are
// treated as zero.
func NewLattice(n int) (*Lattice, error) {
	if n < 0 {
		n = 0
	}
	if n > MaxLatticeSize {
		return nil, fmt.Errorf("%w: %d cells (max %d)", ErrLatticeTooLarge, n, MaxLatticeSize)
	}
	return &Lattice{n: n, data: make([]uint8, n+2)}, nil
}

// Len returns the number of live cells.
func (l *Lattice) Len() int { return l.n }

// Cells exposes the full padded buffer, boundaries included.
func (l *Lattice) Cells() []uint8 { return l.data }

// Interior exposes the live cells only.
func (l *Lattice) Interior() []uint8 { return l.data[1 : l.n+1] }

// CopyFrom overwrites l with the contents of src. Both lattices must have
// the same width.
func (l *Lattice) CopyFrom(src *Lattice) {
	copy(l.data, src.data)
}

// Clear fills the lattice with zeros.
func (l *Lattice) Clear() {
	for i := range l.data {
		l.data[i] = 0
	}
}
