// Package meta implements the solver engine that answers the
// longest-contained-substring question for a compiled expression.
//
// The engine coordinates two execution strategies:
//   - Witness: the general path — per candidate substring, evaluate the
//     expression's witness algebra and read the containment bit
//   - LiteralSet: a fast path for expressions denoting a small finite
//     language, answered with Aho-Corasick multi-pattern search
//
// Strategy selection happens once at compile time, based on whether the
// expression's language can be enumerated within limits. Both strategies
// return bit-identical answers; the choice is purely a performance matter.
package meta

import (
	"fmt"
	"runtime"

	"github.com/coregx/subword/syntax"
)

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableLiteralSet = false // Force the witness path
//	engine, err := meta.CompileWithConfig("ab.", config)
type Config struct {
	// Alphabet is the symbol set expressions and words are written over.
	// Default: letters a, b, c with '1' as the epsilon marker.
	Alphabet syntax.Alphabet

	// EnableLiteralSet enables the finite-language Aho-Corasick fast path.
	// When false, the witness path is always used.
	// Default: true
	EnableLiteralSet bool

	// MaxLiterals caps the size of the enumerated finite language. Expressions
	// exceeding it fall back to the witness path.
	// Default: 256
	MaxLiterals int

	// MaxLiteralLen caps the length of each enumerated string.
	// Default: 64
	MaxLiteralLen int

	// Parallelism is the number of workers for the outer solver loop on the
	// witness path. Zero selects runtime.NumCPU(). Candidate evaluations are
	// fully independent, so this changes throughput only, never answers.
	// Default: 0 (NumCPU)
	Parallelism int
}

// DefaultConfig returns a configuration with sensible defaults: the {a,b,c}
// alphabet, the literal fast path enabled with moderate caps, and one solver
// worker per CPU.
func DefaultConfig() Config {
	return Config{
		Alphabet:         syntax.DefaultAlphabet(),
		EnableLiteralSet: true,
		MaxLiterals:      256,
		MaxLiteralLen:    64,
		Parallelism:      0,
	}
}

// Validate checks that the configuration is usable.
//
// Valid ranges:
//   - Alphabet: must pass syntax.Alphabet.Validate
//   - MaxLiterals: 1 to 100,000
//   - MaxLiteralLen: 1 to 10,000
//   - Parallelism: 0 to 4,096
func (c Config) Validate() error {
	if err := c.Alphabet.Validate(); err != nil {
		return &ConfigError{Field: "Alphabet", Message: err.Error()}
	}
	if c.MaxLiterals < 1 || c.MaxLiterals > 100_000 {
		return &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 100,000"}
	}
	if c.MaxLiteralLen < 1 || c.MaxLiteralLen > 10_000 {
		return &ConfigError{Field: "MaxLiteralLen", Message: "must be between 1 and 10,000"}
	}
	if c.Parallelism < 0 || c.Parallelism > 4096 {
		return &ConfigError{Field: "Parallelism", Message: "must be between 0 and 4,096"}
	}
	return nil
}

// workers resolves Parallelism to a concrete worker count.
func (c Config) workers() int {
	if c.Parallelism > 0 {
		return c.Parallelism
	}
	return runtime.NumCPU()
}

// ConfigError describes an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config field %s: %s", e.Field, e.Message)
}
