package witness

// Union returns the witness of L(a) ∪ L(b): the pointwise OR of every field.
//
// Union is total, commutative, associative and idempotent. Both operands must
// have been built against the same test word.
func Union(a, b *Witness) *Witness {
	checkSameWord(a, b)

	res := a.clone()
	res.substring.Union(b.substring)
	for length := 1; length <= res.n; length++ {
		res.suffixEqualsPrefix[length] = res.suffixEqualsPrefix[length] || b.suffixEqualsPrefix[length]
		res.prefixEqualsSuffix[length] = res.prefixEqualsSuffix[length] || b.prefixEqualsSuffix[length]
	}
	res.hasEpsilon = res.hasEpsilon || b.hasEpsilon
	res.hasWordAsSubstring = res.hasWordAsSubstring || b.hasWordAsSubstring
	return res
}

// Concat returns the witness of the concatenation L(left)·L(right).
//
// The substring table is the classic split DP: a substring belongs to the
// concatenation iff some split puts its left part in L(left) and its right
// part in L(right), with the empty side covered by the operand's hasEpsilon.
// The prefix/suffix tables and hasWordAsSubstring additionally account for
// the test word (or its prefix/suffix) straddling the boundary between a
// left-language string and a right-language string.
func Concat(left, right *Witness) *Witness {
	checkSameWord(left, right)
	n := left.n
	res := newBlank(n)

	res.hasEpsilon = left.hasEpsilon && right.hasEpsilon

	// Substring membership: try every split of (start, length) into a prefix
	// part in L(left) and a suffix part in L(right).
	for start := 0; start < n; start++ {
		for length := 1; length <= n-start; length++ {
			for p := 0; p <= length; p++ {
				var ok bool
				switch {
				case p == 0:
					ok = left.hasEpsilon && right.substring.Get(start, length)
				case p == length:
					ok = right.hasEpsilon && left.substring.Get(start, length)
				default:
					ok = left.substring.Get(start, p) && right.substring.Get(start+p, length-p)
				}
				if ok {
					res.substring.Set(start, length)
					break
				}
			}
		}
	}

	// The whole test word occurs in the concatenation if it already occurs in
	// one operand, or if some split point lands a prefix of the word at the
	// end of a left string and the remaining suffix at the start of a right
	// string:
	//
	//	word = CCCCCTTTT
	//	left:  XXXXXCCCCC   right: TTTTYYYY   ->   XXXXXCCCCCTTTTYYYY
	res.hasWordAsSubstring = left.hasWordAsSubstring || right.hasWordAsSubstring
	for p := 1; p < n && !res.hasWordAsSubstring; p++ {
		res.hasWordAsSubstring = left.suffixEqualsPrefix[p] && right.prefixEqualsSuffix[n-p]
	}

	// A length-len prefix of the word is a suffix of some concatenated string
	// if it is a suffix of a right string alone, a suffix of a left string
	// followed by an epsilon right, or split at k: a left string ending in the
	// first k characters, continued by a right string containing the remaining
	// len-k characters as a member starting at word offset k.
	for length := 1; length <= n; length++ {
		ok := right.suffixEqualsPrefix[length] ||
			(left.suffixEqualsPrefix[length] && right.hasEpsilon)
		for k := 1; k < length && !ok; k++ {
			ok = left.suffixEqualsPrefix[k] && right.substring.Get(k, length-k)
		}
		res.suffixEqualsPrefix[length] = ok
	}

	// Symmetric for suffixes of the word appearing as prefixes of
	// concatenated strings.
	for length := 1; length <= n; length++ {
		ok := left.prefixEqualsSuffix[length] ||
			(left.hasEpsilon && right.prefixEqualsSuffix[length])
		for k := 1; k < length && !ok; k++ {
			ok = left.substring.Get(n-length, length-k) && right.prefixEqualsSuffix[k]
		}
		res.prefixEqualsSuffix[length] = ok
	}

	return res
}

// Star returns the witness of the Kleene closure L(e)* = ε ∪ e ∪ e·e ∪ …
//
// The infinite union is truncated by accumulating powers of e:
//
//	acc = ε, pow = ε
//	repeat: pow = pow·e; acc = acc ∪ pow
//
// Every witness field is a boolean statement about a position/length pair of
// the test word, so the accumulation is monotone over a finite lattice and
// must reach a fixed point. Iteration stops as soon as a round leaves acc
// unchanged (nothing later can change it either, since each round is a
// function of acc and pow and pow's contribution is already absorbed), and in
// any case after 2n+2 rounds, the pigeonhole bound over the O(n²) pairs
// inherited from the algorithm this implements. The hard cap means
// termination never rests on the convergence argument alone.
func Star(e *Witness) *Witness {
	n := e.n
	pow := NewEpsilon(n)
	acc := pow

	for i := 0; i < 2*n+2; i++ {
		pow = Concat(pow, e)
		next := Union(acc, pow)
		if next.Equal(acc) {
			return next
		}
		acc = next
	}
	return acc
}
