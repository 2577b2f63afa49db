package meta

import (
	"fmt"

	"github.com/coregx/subword/literal"
	"github.com/coregx/subword/syntax"
)

// Strategy represents the execution strategy for answering
// LongestSubstring queries.
//
// Selection is automatic at compile time; see SelectStrategy.
type Strategy int

const (
	// UseWitness evaluates the witness algebra for every candidate substring.
	// This is the general strategy and works for every expression, including
	// all infinite languages.
	UseWitness Strategy = iota

	// UseLiteralSet answers with Aho-Corasick multi-pattern search over the
	// expression's enumerated finite language.
	// Selected for:
	//   - expressions whose language enumerates within the configured caps
	//     (no productive Kleene star, bounded alternation fan-out)
	//   - EnableLiteralSet true in config
	UseLiteralSet
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseWitness:
		return "Witness"
	case UseLiteralSet:
		return "LiteralSet"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// SelectStrategy chooses the execution strategy for an expression.
//
// literals is the result of literal.Enumerate, or nil when enumeration
// failed. The literal path is chosen whenever it is available and enabled;
// it is always at least as fast as the witness path when applicable.
func SelectStrategy(expr *syntax.Expr, literals *literal.Set, config Config) Strategy {
	if config.EnableLiteralSet && literals != nil {
		return UseLiteralSet
	}
	return UseWitness
}

// StrategyReason returns a human-readable explanation of why the given
// strategy was selected. Useful for debugging strategy selection.
func StrategyReason(strategy Strategy, literals *literal.Set, config Config) string {
	switch strategy {
	case UseLiteralSet:
		return fmt.Sprintf("finite language with %d literals (max member length %d)",
			literals.Len(), literals.MaxLen())
	case UseWitness:
		if !config.EnableLiteralSet {
			return "literal fast path disabled by config"
		}
		return "language is infinite or exceeds literal enumeration caps"
	default:
		return "unknown strategy"
	}
}
