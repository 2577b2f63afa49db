package syntax

// Operator characters. These are reserved in every alphabet: a letter or
// epsilon marker may not collide with them.
const (
	opUnion  = '+'
	opConcat = '.'
	opStar   = '*'
)

// Alphabet describes the finite symbol set expressions and words are written
// over, plus the epsilon marker used in expressions to denote the empty
// string.
//
// The epsilon marker must be disjoint from the letters and from the three
// operator characters; Validate enforces this. Words are written over Letters
// only — the epsilon marker never appears in a word.
//
// Example:
//
//	alpha := syntax.Alphabet{Letters: []byte("abc"), Epsilon: '1'}
//	if err := alpha.Validate(); err != nil {
//	    log.Fatal(err)
//	}
type Alphabet struct {
	// Letters are the alphabet symbols, e.g. []byte("abc").
	Letters []byte

	// Epsilon is the expression symbol denoting the empty string.
	Epsilon byte
}

// DefaultAlphabet returns the alphabet {a, b, c} with '1' as the epsilon
// marker.
func DefaultAlphabet() Alphabet {
	return Alphabet{
		Letters: []byte("abc"),
		Epsilon: '1',
	}
}

// Validate checks that the alphabet is non-empty and that the epsilon marker
// collides with neither a letter nor an operator character.
func (a Alphabet) Validate() error {
	if len(a.Letters) == 0 {
		return &ParseError{Err: ErrInvalidAlphabet}
	}
	if isOperator(a.Epsilon) {
		return &ParseError{Sym: a.Epsilon, Err: ErrInvalidAlphabet}
	}
	for _, c := range a.Letters {
		if isOperator(c) || c == a.Epsilon {
			return &ParseError{Sym: c, Err: ErrInvalidAlphabet}
		}
	}
	return nil
}

// IsLetter reports whether c is an alphabet letter.
func (a Alphabet) IsLetter(c byte) bool {
	for _, l := range a.Letters {
		if c == l {
			return true
		}
	}
	return false
}

// CheckWord validates a word against the alphabet: it must be non-empty and
// contain letters only. The epsilon marker is rejected like any other
// non-letter.
//
// Returns ErrEmptyWord or ErrInvalidWordSymbol (wrapped in a WordError
// carrying position and symbol) on violation.
func (a Alphabet) CheckWord(word []byte) error {
	if len(word) == 0 {
		return &WordError{Err: ErrEmptyWord}
	}
	for i, c := range word {
		if !a.IsLetter(c) {
			return &WordError{Pos: i, Sym: c, Err: ErrInvalidWordSymbol}
		}
	}
	return nil
}

func isOperator(c byte) bool {
	return c == opUnion || c == opConcat || c == opStar
}
