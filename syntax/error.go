// Package syntax provides the input surface for postfix regular expressions:
// the alphabet configuration, token classification, expression parsing, and
// word validation.
//
// Expressions are written in postfix form over a configurable finite alphabet
// plus a single epsilon marker, with the operators '+' (union), '.'
// (concatenation) and '*' (Kleene star). The parser produces an immutable
// token stream; evaluation against a concrete word lives in package eval.
package syntax

import (
	"errors"
	"fmt"
)

// Validation errors. All of them are fatal for the input that produced them;
// none is transient or retryable.
var (
	// ErrEmptyExpression indicates the expression token was empty
	ErrEmptyExpression = errors.New("expression is empty")

	// ErrEmptyWord indicates the word to validate was empty
	ErrEmptyWord = errors.New("word is empty")

	// ErrInvalidWordSymbol indicates the word contains a character outside
	// the alphabet (the epsilon marker is never a valid word character)
	ErrInvalidWordSymbol = errors.New("unknown symbol in word")

	// ErrUnknownExpressionSymbol indicates an expression token is neither an
	// alphabet symbol, the epsilon marker, nor an operator
	ErrUnknownExpressionSymbol = errors.New("unknown symbol in expression")

	// ErrMissingOperands indicates an operator had too few operands on the
	// stack, or evaluation ended with an empty stack
	ErrMissingOperands = errors.New("missing operands")

	// ErrTooManyOperands indicates evaluation ended with more than one
	// operand on the stack
	ErrTooManyOperands = errors.New("too many operands")

	// ErrInvalidAlphabet indicates an alphabet configuration whose epsilon
	// marker collides with a letter or an operator, or with no letters at all
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)

// ParseError wraps an expression-level validation error with the offending
// position and symbol.
type ParseError struct {
	Pattern string
	Pos     int
	Sym     byte
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrUnknownExpressionSymbol) {
		return fmt.Sprintf("%v: %q at position %d in %q", e.Err, e.Sym, e.Pos, e.Pattern)
	}
	if e.Pattern != "" {
		return fmt.Sprintf("%v in %q", e.Err, e.Pattern)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WordError wraps a word-level validation error with the offending position
// and symbol.
type WordError struct {
	Pos int
	Sym byte
	Err error
}

// Error implements the error interface
func (e *WordError) Error() string {
	if errors.Is(e.Err, ErrInvalidWordSymbol) {
		return fmt.Sprintf("%v: %q at position %d", e.Err, e.Sym, e.Pos)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error
func (e *WordError) Unwrap() error {
	return e.Err
}
