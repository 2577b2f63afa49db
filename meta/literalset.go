package meta

import (
	"sync/atomic"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/subword/eval"
)

// longestLiteral answers a query on the finite-language fast path.
//
// For a finite language, a candidate substring is contained in the language
// iff it is a substring of one of the enumerated literals. "Some length-L
// substring of the word is a substring of some literal" is monotone in L
// (drop a character from a common substring and it stays common), so the
// answer is found by binary search on L, probing each length with one
// Aho-Corasick automaton built over the word's distinct length-L substrings.
func (e *Engine) longestLiteral(word []byte) (int, error) {
	lo, hi := 0, len(word)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		ok, err := e.probeLength(word, mid)
		if err != nil {
			return 0, err
		}
		if ok {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo, nil
}

// probeLength reports whether some length-length substring of word is a
// substring of some enumerated literal.
func (e *Engine) probeLength(word []byte, length int) (bool, error) {
	atomic.AddUint64(&e.stats.LiteralProbes, 1)

	builder := ahocorasick.NewBuilder()
	seen := make(map[string]struct{})
	for start := 0; start+length <= len(word); start++ {
		candidate := word[start : start+length]
		if _, dup := seen[string(candidate)]; dup {
			continue
		}
		seen[string(candidate)] = struct{}{}
		builder.AddPattern(candidate)
	}

	auto, err := builder.Build()
	if err != nil {
		// Automaton construction is best-effort; fall back to evaluating the
		// candidates through the witness algebra instead.
		return e.probeLengthWitness(word, length)
	}

	for i := 0; i < e.literals.Len(); i++ {
		if auto.IsMatch([]byte(e.literals.Get(i))) {
			return true, nil
		}
	}
	return false, nil
}

// probeLengthWitness is the automaton-free equivalent of probeLength.
func (e *Engine) probeLengthWitness(word []byte, length int) (bool, error) {
	for start := 0; start+length <= len(word); start++ {
		root, err := eval.Evaluate(e.expr, word[start:start+length])
		if err != nil {
			return false, err
		}
		atomic.AddUint64(&e.stats.Evaluations, 1)
		if root.HasWordAsSubstring() {
			return true, nil
		}
	}
	return false, nil
}
