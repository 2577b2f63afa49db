// Package witness implements the positional witness algebra at the heart of
// the longest-substring solver.
//
// A Witness summarizes, for one sub-language L of a regular expression and one
// fixed test word T, every substring/prefix/suffix relation between T and the
// strings of L — without enumerating L, which may be infinite:
//
//   - which substrings of T are members of L
//   - whether the empty string is a member of L
//   - whether T occurs as a substring of some member of L
//   - which prefixes of T occur as suffixes of members of L
//   - which suffixes of T occur as prefixes of members of L
//
// Leaf witnesses are built directly from a single symbol (or epsilon); the
// composition operators Union, Concat and Star build the witness of a compound
// language from the witnesses of its parts. The prefix/suffix tables exist so
// Concat can account for T straddling the boundary between the two halves.
//
// All indexing is relative to the one test word a witness was built for.
// Witnesses built for different test words must never be combined; the
// composition operators panic on a word-length mismatch, the only cheap proxy
// for that misuse.
package witness

import (
	"fmt"

	"github.com/coregx/subword/internal/bitgrid"
)

// Witness carries the substring/prefix/suffix relations of one sub-language
// relative to one fixed test word of length n.
//
// Fields are monotone under Union: composition only ever sets them, never
// clears them. A Witness is immutable once returned from a constructor or a
// composition operator.
type Witness struct {
	// n is the test word length.
	n int

	// substring marks (start, length) pairs whose substring of the test word
	// is a member of the language. Length zero is unrepresentable; the empty
	// string is tracked by hasEpsilon alone.
	substring *bitgrid.Grid

	// hasEpsilon records membership of the empty string.
	hasEpsilon bool

	// hasWordAsSubstring records whether the whole test word occurs as a
	// substring of some member of the language. This is the bit the solver
	// ultimately consumes.
	hasWordAsSubstring bool

	// suffixEqualsPrefix[len] (1 <= len <= n) records whether some member of
	// the language has a suffix equal to the length-len prefix of the test
	// word. Index 0 is unused.
	suffixEqualsPrefix []bool

	// prefixEqualsSuffix[len] (1 <= len <= n) records whether some member of
	// the language has a prefix equal to the length-len suffix of the test
	// word. Index 0 is unused.
	prefixEqualsSuffix []bool
}

// newBlank returns an all-false witness for a test word of length n.
// This is the witness of the empty language.
func newBlank(n int) *Witness {
	if n <= 0 {
		panic(fmt.Sprintf("witness: invalid test word length %d", n))
	}
	return &Witness{
		n:                  n,
		substring:          bitgrid.New(n),
		suffixEqualsPrefix: make([]bool, n+1),
		prefixEqualsSuffix: make([]bool, n+1),
	}
}

// NewSymbol builds the leaf witness of the single-symbol language {c} against
// the test word. The word must be non-empty.
//
// The language contains exactly one string of length one, so only length-1
// table entries can be set: every occurrence of c in the word, plus the
// prefix/suffix entries when c matches the word's first or last character.
// The whole word occurs inside {c} only when the word is c itself.
func NewSymbol(c byte, word []byte) *Witness {
	w := newBlank(len(word))
	n := w.n

	w.hasWordAsSubstring = n == 1 && word[0] == c
	if word[0] == c {
		w.suffixEqualsPrefix[1] = true
	}
	if word[n-1] == c {
		w.prefixEqualsSuffix[1] = true
	}
	for i := 0; i < n; i++ {
		if word[i] == c {
			w.substring.Set(i, 1)
		}
	}
	return w
}

// NewEpsilon builds the leaf witness of the empty-string language {ε} against
// a test word of length n.
//
// Only hasEpsilon is set: a non-empty test word cannot be a substring of the
// empty string, and the empty string has no non-empty prefixes or suffixes.
func NewEpsilon(n int) *Witness {
	w := newBlank(n)
	w.hasEpsilon = true
	return w
}

// WordLen returns the length of the test word the witness is indexed against.
func (w *Witness) WordLen() int {
	return w.n
}

// HasEpsilon reports whether the empty string is a member of the language.
func (w *Witness) HasEpsilon() bool {
	return w.hasEpsilon
}

// HasWordAsSubstring reports whether the test word occurs as a substring of
// some member of the language.
func (w *Witness) HasWordAsSubstring() bool {
	return w.hasWordAsSubstring
}

// Substring reports whether the test word's substring at (start, length) is a
// member of the language. Out-of-range coordinates report false.
func (w *Witness) Substring(start, length int) bool {
	return w.substring.Get(start, length)
}

// SuffixEqualsPrefix reports whether some member of the language has a suffix
// equal to the length-len prefix of the test word. Out-of-range lengths
// report false.
func (w *Witness) SuffixEqualsPrefix(length int) bool {
	if length < 1 || length > w.n {
		return false
	}
	return w.suffixEqualsPrefix[length]
}

// PrefixEqualsSuffix reports whether some member of the language has a prefix
// equal to the length-len suffix of the test word. Out-of-range lengths
// report false.
func (w *Witness) PrefixEqualsSuffix(length int) bool {
	if length < 1 || length > w.n {
		return false
	}
	return w.prefixEqualsSuffix[length]
}

// Equal reports whether both witnesses were built for the same test word
// length and agree on every field. Used by Star's fixed-point check and by
// determinism tests.
func (w *Witness) Equal(other *Witness) bool {
	if w.n != other.n ||
		w.hasEpsilon != other.hasEpsilon ||
		w.hasWordAsSubstring != other.hasWordAsSubstring {
		return false
	}
	for length := 1; length <= w.n; length++ {
		if w.suffixEqualsPrefix[length] != other.suffixEqualsPrefix[length] ||
			w.prefixEqualsSuffix[length] != other.prefixEqualsSuffix[length] {
			return false
		}
	}
	return w.substring.Equal(other.substring)
}

// clone returns an independent copy of the witness.
func (w *Witness) clone() *Witness {
	c := &Witness{
		n:                  w.n,
		substring:          w.substring.Clone(),
		hasEpsilon:         w.hasEpsilon,
		hasWordAsSubstring: w.hasWordAsSubstring,
		suffixEqualsPrefix: make([]bool, w.n+1),
		prefixEqualsSuffix: make([]bool, w.n+1),
	}
	copy(c.suffixEqualsPrefix, w.suffixEqualsPrefix)
	copy(c.prefixEqualsSuffix, w.prefixEqualsSuffix)
	return c
}

func checkSameWord(a, b *Witness) {
	if a.n != b.n {
		panic(fmt.Sprintf("witness: combining witnesses for different test words (lengths %d and %d)", a.n, b.n))
	}
}
