// Package eval runs a postfix expression against one test word, producing the
// root witness for the whole expression.
//
// Evaluation is a plain operand stack machine: symbol and epsilon tokens push
// leaf witnesses sized to the test word, operator tokens pop and combine.
// Each call builds everything from scratch — witness tables are positional
// with respect to the current test word and are meaningless for any other
// word, so nothing is ever cached or shared across calls.
//
// Malformed expressions surface as ordinary error values (syntax.ErrMissingOperands,
// syntax.ErrTooManyOperands), never as panics, so callers running many
// evaluations can treat a failure as a normal result.
package eval

import (
	"github.com/coregx/subword/syntax"
	"github.com/coregx/subword/witness"
)

// Evaluate walks the expression's postfix tokens against the given test word
// and returns the root witness.
//
// The word must be non-empty and alphabet-valid; Evaluate checks this and
// returns the syntax package's word errors otherwise. Operator arity failures
// return syntax.ErrMissingOperands / syntax.ErrTooManyOperands wrapped with
// the pattern, matching what syntax.(*Expr).Validate reports up front.
func Evaluate(expr *syntax.Expr, word []byte) (*witness.Witness, error) {
	if err := expr.Alphabet().CheckWord(word); err != nil {
		return nil, err
	}

	var stack []*witness.Witness
	for _, tok := range expr.Tokens() {
		switch tok.Kind {
		case syntax.TokenSymbol:
			stack = append(stack, witness.NewSymbol(tok.Sym, word))

		case syntax.TokenEpsilon:
			stack = append(stack, witness.NewEpsilon(len(word)))

		case syntax.TokenStar:
			if len(stack) < 1 {
				return nil, arityError(expr, syntax.ErrMissingOperands)
			}
			stack[len(stack)-1] = witness.Star(stack[len(stack)-1])

		case syntax.TokenUnion, syntax.TokenConcat:
			if len(stack) < 2 {
				return nil, arityError(expr, syntax.ErrMissingOperands)
			}
			// First pop is the right operand, second the left.
			right := stack[len(stack)-1]
			left := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			if tok.Kind == syntax.TokenUnion {
				stack = append(stack, witness.Union(left, right))
			} else {
				stack = append(stack, witness.Concat(left, right))
			}
		}
	}

	switch {
	case len(stack) == 0:
		return nil, arityError(expr, syntax.ErrMissingOperands)
	case len(stack) > 1:
		return nil, arityError(expr, syntax.ErrTooManyOperands)
	}
	return stack[0], nil
}

func arityError(expr *syntax.Expr, sentinel error) error {
	return &syntax.ParseError{Pattern: expr.Pattern(), Err: sentinel}
}
