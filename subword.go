// Package subword computes, for a regular expression and a word, the length
// of the longest contiguous substring of the word that occurs as a substring
// of some string in the expression's language — without ever enumerating the
// language, which may be infinite.
//
// Expressions are written in postfix form over a configurable finite alphabet
// (default {a, b, c}) with '1' as the epsilon marker and the operators '+'
// (union), '.' (concatenation) and '*' (Kleene star). Words are written over
// the alphabet letters only.
//
// Basic usage:
//
//	// "ab." is the concatenation a·b, i.e. the language {"ab"}
//	expr, err := subword.Compile("ab.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	n, err := expr.LongestSubstringString("cab")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(n) // 2 — the substring "ab" at offset 1
//
// Advanced usage:
//
//	// Custom configuration
//	config := subword.DefaultConfig()
//	config.Alphabet = syntax.Alphabet{Letters: []byte("xy"), Epsilon: '0'}
//	expr, err := subword.CompileWithConfig("xy+*", config)
//
// The core is a witness algebra: for every candidate substring, the engine
// composes per-sub-expression witnesses describing how that substring's
// prefixes, suffixes and substrings relate to the sub-language, with Kleene
// star truncated to a finite, provably sufficient number of iterations.
// Expressions denoting a small finite language are instead answered with
// Aho-Corasick multi-pattern search; the two paths return identical results.
package subword

import (
	"github.com/coregx/subword/meta"
)

// Expression is a compiled postfix regular expression.
//
// An Expression is safe to use concurrently from multiple goroutines, except
// for ResetStats.
//
// Example:
//
//	expr := subword.MustCompile("a*")
//	n, _ := expr.LongestSubstringString("aaa")
//	println(n) // 3
type Expression struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a postfix expression over the default {a, b, c} alphabet.
//
// Returns an error for an empty pattern, an unknown symbol, or an operator
// arity violation (a malformed postfix stream). All errors are matchable with
// errors.Is against the sentinels in package syntax.
func Compile(pattern string) (*Expression, error) {
	engine, err := meta.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Expression{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// MustCompile compiles a postfix expression and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Expression {
	expr, err := Compile(pattern)
	if err != nil {
		panic("subword: Compile(`" + pattern + "`): " + err.Error())
	}
	return expr
}

// CompileWithConfig compiles a pattern with custom configuration: a different
// alphabet, literal fast-path caps, or solver parallelism.
//
// Example:
//
//	config := subword.DefaultConfig()
//	config.Parallelism = 1 // single-threaded solving
//	expr, err := subword.CompileWithConfig("ab.c+*", config)
func CompileWithConfig(pattern string, config meta.Config) (*Expression, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}

	return &Expression{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass it to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// LongestSubstring returns the length of the longest contiguous substring of
// word that occurs as a substring of some string in the expression's
// language, or 0 when no substring does.
//
// word must be non-empty and consist of alphabet letters only (the epsilon
// marker is not a word character); otherwise syntax.ErrEmptyWord or
// syntax.ErrInvalidWordSymbol is returned.
func (e *Expression) LongestSubstring(word []byte) (int, error) {
	return e.engine.LongestSubstring(word)
}

// LongestSubstringString is like LongestSubstring but accepts a string.
func (e *Expression) LongestSubstringString(word string) (int, error) {
	return e.engine.LongestSubstring([]byte(word))
}

// String returns the source pattern.
func (e *Expression) String() string {
	return e.pattern
}

// Strategy returns the name of the execution strategy selected at compile
// time ("Witness" or "LiteralSet"). Intended for debugging and tests.
func (e *Expression) Strategy() string {
	return e.engine.Strategy().String()
}

// StrategyReason returns a human-readable explanation of the strategy choice.
func (e *Expression) StrategyReason() string {
	return e.engine.StrategyReason()
}

// Stats returns a snapshot of the engine's activity counters.
func (e *Expression) Stats() meta.Stats {
	return e.engine.Stats()
}

// ResetStats zeroes the engine's activity counters.
func (e *Expression) ResetStats() {
	e.engine.ResetStats()
}
