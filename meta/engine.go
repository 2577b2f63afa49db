package meta

import (
	"sync/atomic"

	"github.com/coregx/subword/literal"
	"github.com/coregx/subword/syntax"
)

// Engine is a compiled expression ready to answer LongestSubstring queries.
//
// An Engine is safe for concurrent use: the parsed expression, literal set
// and configuration are immutable after Compile, every query builds its own
// evaluation state, and statistics are updated atomically.
type Engine struct {
	expr     *syntax.Expr
	config   Config
	strategy Strategy

	// literals is the enumerated finite language, nil when the language is
	// infinite or exceeded the enumeration caps.
	literals *literal.Set

	stats engineStats
}

// engineStats holds atomic counters describing engine activity.
type engineStats struct {
	// Evaluations counts witness-algebra evaluations performed.
	Evaluations uint64

	// LiteralProbes counts Aho-Corasick probe rounds on the literal path.
	LiteralProbes uint64
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	// Evaluations is the number of witness-algebra evaluations performed.
	Evaluations uint64

	// LiteralProbes is the number of Aho-Corasick probe rounds performed.
	LiteralProbes uint64
}

// Compile parses and validates pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig parses and validates pattern and selects the execution
// strategy.
//
// Compilation fails on an invalid config, on lexical errors
// (syntax.ErrEmptyExpression, syntax.ErrUnknownExpressionSymbol) and on arity
// errors (syntax.ErrMissingOperands, syntax.ErrTooManyOperands), so a
// returned Engine never fails for expression-shaped reasons later.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	expr, err := syntax.Parse(pattern, config.Alphabet)
	if err != nil {
		return nil, err
	}
	if err := expr.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		expr:   expr,
		config: config,
	}

	limits := literal.Limits{
		MaxLiterals:   config.MaxLiterals,
		MaxLiteralLen: config.MaxLiteralLen,
	}
	if set, ok := literal.Enumerate(expr, limits); ok {
		e.literals = set
	}
	e.strategy = SelectStrategy(expr, e.literals, config)

	return e, nil
}

// LongestSubstring returns the length of the longest contiguous substring of
// word that occurs as a substring of some string in the expression's
// language, or 0 when no substring does.
//
// word must be non-empty and alphabet-valid; otherwise syntax.ErrEmptyWord or
// syntax.ErrInvalidWordSymbol is returned.
func (e *Engine) LongestSubstring(word []byte) (int, error) {
	if err := e.config.Alphabet.CheckWord(word); err != nil {
		return 0, err
	}

	if e.strategy == UseLiteralSet {
		return e.longestLiteral(word)
	}
	return e.longestWitness(word)
}

// Pattern returns the source pattern the engine was compiled from.
func (e *Engine) Pattern() string {
	return e.expr.Pattern()
}

// Strategy returns the execution strategy selected at compile time.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// StrategyReason returns a human-readable explanation of the strategy choice.
func (e *Engine) StrategyReason() string {
	return StrategyReason(e.strategy, e.literals, e.config)
}

// Stats returns a snapshot of the engine's activity counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Evaluations:   atomic.LoadUint64(&e.stats.Evaluations),
		LiteralProbes: atomic.LoadUint64(&e.stats.LiteralProbes),
	}
}

// ResetStats zeroes the engine's activity counters.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Evaluations, 0)
	atomic.StoreUint64(&e.stats.LiteralProbes, 0)
}
