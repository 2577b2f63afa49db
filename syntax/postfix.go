package syntax

// TokenKind is the closed set of postfix token variants. Operator dispatch is
// an explicit switch over this tag; the operator set is fixed and small, so no
// interface dispatch is involved.
type TokenKind int

const (
	// TokenSymbol is an alphabet letter.
	TokenSymbol TokenKind = iota

	// TokenEpsilon is the epsilon marker (the empty-string language).
	TokenEpsilon

	// TokenUnion is the binary union operator '+'.
	TokenUnion

	// TokenConcat is the binary concatenation operator '.'.
	TokenConcat

	// TokenStar is the unary Kleene star operator '*'.
	TokenStar
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenSymbol:
		return "Symbol"
	case TokenEpsilon:
		return "Epsilon"
	case TokenUnion:
		return "Union"
	case TokenConcat:
		return "Concat"
	case TokenStar:
		return "Star"
	default:
		return "Unknown"
	}
}

// Token is one element of a postfix token stream. Sym is meaningful only for
// TokenSymbol.
type Token struct {
	Kind TokenKind
	Sym  byte
}

// Expr is a parsed postfix expression: an immutable token sequence over a
// fixed alphabet. An Expr is safe for concurrent use; evaluation state lives
// entirely in the evaluator, never here.
type Expr struct {
	pattern  string
	alphabet Alphabet
	tokens   []Token
}

// Parse classifies each character of pattern into a token over the given
// alphabet.
//
// Parse validates tokens only; operator arity is checked separately (see
// Validate) because arity violations are an evaluation-shape property, not a
// lexical one.
//
// Returns ErrEmptyExpression for an empty pattern and
// ErrUnknownExpressionSymbol (wrapped in a ParseError with the position) for
// a character that is neither a letter, the epsilon marker, nor an operator.
func Parse(pattern string, alphabet Alphabet) (*Expr, error) {
	if err := alphabet.Validate(); err != nil {
		return nil, err
	}
	if len(pattern) == 0 {
		return nil, &ParseError{Pattern: pattern, Err: ErrEmptyExpression}
	}

	tokens := make([]Token, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case c == opUnion:
			tokens = append(tokens, Token{Kind: TokenUnion})
		case c == opConcat:
			tokens = append(tokens, Token{Kind: TokenConcat})
		case c == opStar:
			tokens = append(tokens, Token{Kind: TokenStar})
		case c == alphabet.Epsilon:
			tokens = append(tokens, Token{Kind: TokenEpsilon})
		case alphabet.IsLetter(c):
			tokens = append(tokens, Token{Kind: TokenSymbol, Sym: c})
		default:
			return nil, &ParseError{Pattern: pattern, Pos: i, Sym: c, Err: ErrUnknownExpressionSymbol}
		}
	}

	return &Expr{
		pattern:  pattern,
		alphabet: alphabet,
		tokens:   tokens,
	}, nil
}

// Validate walks the token stream counting stack depth and reports the arity
// errors evaluation would hit: ErrMissingOperands when an operator lacks
// operands (or nothing remains at the end), ErrTooManyOperands when more than
// one operand remains.
//
// The evaluator performs the same checks while running; Validate exists so
// compilation can reject a malformed expression before any word is seen.
func (e *Expr) Validate() error {
	depth := 0
	for _, tok := range e.tokens {
		switch tok.Kind {
		case TokenSymbol, TokenEpsilon:
			depth++
		case TokenStar:
			if depth < 1 {
				return &ParseError{Pattern: e.pattern, Err: ErrMissingOperands}
			}
		case TokenUnion, TokenConcat:
			if depth < 2 {
				return &ParseError{Pattern: e.pattern, Err: ErrMissingOperands}
			}
			depth--
		}
	}
	if depth == 0 {
		return &ParseError{Pattern: e.pattern, Err: ErrMissingOperands}
	}
	if depth > 1 {
		return &ParseError{Pattern: e.pattern, Err: ErrTooManyOperands}
	}
	return nil
}

// Tokens returns the token sequence. Callers must not modify it.
func (e *Expr) Tokens() []Token {
	return e.tokens
}

// Pattern returns the source text the expression was parsed from.
func (e *Expr) Pattern() string {
	return e.pattern
}

// Alphabet returns the alphabet the expression was parsed over.
func (e *Expr) Alphabet() Alphabet {
	return e.alphabet
}

// String returns the source pattern.
func (e *Expr) String() string {
	return e.pattern
}
