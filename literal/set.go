package literal

import "sort"

// Limits caps enumeration so pathological patterns cannot blow up memory.
type Limits struct {
	// MaxLiterals limits how many distinct strings the set may hold at any
	// point during enumeration. Default: 256.
	MaxLiterals int

	// MaxLiteralLen limits the length of each enumerated string. Default: 64.
	MaxLiteralLen int
}

// DefaultLimits returns the default enumeration limits.
func DefaultLimits() Limits {
	return Limits{
		MaxLiterals:   256,
		MaxLiteralLen: 64,
	}
}

// Set is a finite language: a deduplicated, sorted collection of strings.
// The empty string is a valid member. A Set is immutable once returned from
// Enumerate.
type Set struct {
	literals []string
}

// Len returns the number of distinct strings in the set.
func (s *Set) Len() int {
	return len(s.literals)
}

// Get returns the i-th string in sorted order.
func (s *Set) Get(i int) string {
	return s.literals[i]
}

// IsEmpty reports whether the set has no members (the empty language).
func (s *Set) IsEmpty() bool {
	return len(s.literals) == 0
}

// Strings returns the members in sorted order. Callers must not modify the
// returned slice.
func (s *Set) Strings() []string {
	return s.literals
}

// MaxLen returns the length of the longest member, or 0 for an empty set.
func (s *Set) MaxLen() int {
	max := 0
	for _, lit := range s.literals {
		if len(lit) > max {
			max = len(lit)
		}
	}
	return max
}

func newSet(members map[string]struct{}) *Set {
	literals := make([]string, 0, len(members))
	for lit := range members {
		literals = append(literals, lit)
	}
	sort.Strings(literals)
	return &Set{literals: literals}
}
