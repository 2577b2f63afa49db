// Package literal enumerates the finite language of a postfix expression when
// one exists within configured limits.
//
// An expression without a productive Kleene star denotes a finite set of
// strings. When that set is small, the solver can bypass the witness algebra
// entirely and answer with multi-pattern string search instead; Enumerate
// decides whether that fast path is available and materializes the set.
//
// Enumeration is deliberately capped: alternation fans out multiplicatively
// under concatenation, so without limits a short pattern can denote an
// enormous set. A capped-out enumeration simply reports failure and the
// caller falls back to the witness engine.
package literal

import "github.com/coregx/subword/syntax"

// Enumerate materializes the language of expr as a finite string set.
//
// It runs the same postfix stack discipline as evaluation, but with sets of
// strings as operands:
//
//   - a letter pushes the singleton {c}, epsilon pushes {""}
//   - union merges the two sets
//   - concatenation forms all pairwise concatenations
//   - star succeeds only when its operand denotes a subset of {""} (then the
//     closure is {""} itself); any other starred operand makes the language
//     infinite and enumeration fails
//
// The second return value reports success. Enumeration fails on an infinite
// language, on exceeding the limits, or on a malformed expression (callers
// are expected to have run syntax.(*Expr).Validate first).
func Enumerate(expr *syntax.Expr, limits Limits) (*Set, bool) {
	var stack []map[string]struct{}

	pop := func() (map[string]struct{}, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, true
	}

	for _, tok := range expr.Tokens() {
		switch tok.Kind {
		case syntax.TokenSymbol:
			stack = append(stack, map[string]struct{}{string(tok.Sym): {}})

		case syntax.TokenEpsilon:
			stack = append(stack, map[string]struct{}{"": {}})

		case syntax.TokenStar:
			operand, ok := pop()
			if !ok {
				return nil, false
			}
			for lit := range operand {
				if lit != "" {
					// Starring a language with a non-empty member makes it
					// infinite.
					return nil, false
				}
			}
			stack = append(stack, map[string]struct{}{"": {}})

		case syntax.TokenUnion:
			right, ok := pop()
			if !ok {
				return nil, false
			}
			left, ok := pop()
			if !ok {
				return nil, false
			}
			merged := make(map[string]struct{}, len(left)+len(right))
			for lit := range left {
				merged[lit] = struct{}{}
			}
			for lit := range right {
				merged[lit] = struct{}{}
			}
			if len(merged) > limits.MaxLiterals {
				return nil, false
			}
			stack = append(stack, merged)

		case syntax.TokenConcat:
			right, ok := pop()
			if !ok {
				return nil, false
			}
			left, ok := pop()
			if !ok {
				return nil, false
			}
			product := make(map[string]struct{}, len(left)*len(right))
			for l := range left {
				for r := range right {
					lit := l + r
					if len(lit) > limits.MaxLiteralLen {
						return nil, false
					}
					product[lit] = struct{}{}
					if len(product) > limits.MaxLiterals {
						return nil, false
					}
				}
			}
			stack = append(stack, product)
		}
	}

	if len(stack) != 1 {
		return nil, false
	}
	return newSet(stack[0]), true
}
