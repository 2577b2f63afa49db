// Package bitgrid provides a packed triangular boolean table indexed by
// (start, length) pairs over a fixed word length.
//
// The grid answers questions of the form "is the substring starting at offset
// start with the given length marked?" in O(1), and supports word-level union,
// which is what makes repeated language-union operations cheap: merging two
// grids touches 64 cells per machine word instead of one cell at a time.
//
// Valid coordinates for a grid of word length n are 0 <= start < n and
// 1 <= length <= n-start. Length zero is deliberately unrepresentable; callers
// track the empty string separately.
package bitgrid

import "fmt"

// Grid is a (start, length) boolean table backed by packed uint64 words.
// One row per start offset, one bit per length. The zero value is unusable;
// use New.
type Grid struct {
	n        int      // word length the grid is indexed against
	rowWords int      // uint64 words per row
	bits     []uint64 // rows laid out contiguously
}

// New creates a grid for a word of length n with all cells cleared.
// n must be positive.
func New(n int) *Grid {
	if n <= 0 {
		panic(fmt.Sprintf("bitgrid: invalid word length %d", n))
	}
	rowWords := (n + 63) / 64
	return &Grid{
		n:        n,
		rowWords: rowWords,
		bits:     make([]uint64, n*rowWords),
	}
}

// WordLen returns the word length the grid is indexed against.
func (g *Grid) WordLen() int {
	return g.n
}

// Get reports whether the cell (start, length) is set.
// Out-of-range coordinates return false.
func (g *Grid) Get(start, length int) bool {
	if start < 0 || start >= g.n || length < 1 || length > g.n-start {
		return false
	}
	bit := length - 1
	word := g.bits[start*g.rowWords+bit/64]
	return word&(1<<(bit%64)) != 0
}

// Set marks the cell (start, length).
// Panics on out-of-range coordinates; the composition routines never produce
// them, so a violation is a programming error worth failing loudly on.
func (g *Grid) Set(start, length int) {
	if start < 0 || start >= g.n || length < 1 || length > g.n-start {
		panic(fmt.Sprintf("bitgrid: Set(%d, %d) out of range for word length %d", start, length, g.n))
	}
	bit := length - 1
	g.bits[start*g.rowWords+bit/64] |= 1 << (bit % 64)
}

// Union sets every cell of g that is set in other.
// Both grids must have been created for the same word length.
func (g *Grid) Union(other *Grid) {
	if g.n != other.n {
		panic(fmt.Sprintf("bitgrid: Union of mismatched word lengths %d and %d", g.n, other.n))
	}
	for i := range g.bits {
		g.bits[i] |= other.bits[i]
	}
}

// Equal reports whether both grids have the same word length and identical cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.n != other.n {
		return false
	}
	for i := range g.bits {
		if g.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		n:        g.n,
		rowWords: g.rowWords,
		bits:     make([]uint64, len(g.bits)),
	}
	copy(clone.bits, g.bits)
	return clone
}
