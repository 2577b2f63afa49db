package subword

import (
	"errors"
	"testing"

	"github.com/coregx/subword/syntax"
)

func TestLongestSubstring_Examples(t *testing.T) {
	tests := []struct {
		pattern string
		word    string
		want    int
	}{
		{"a", "a", 1},
		{"a", "b", 0},
		{"ab.", "ab", 2},
		{"ab.", "cab", 2}, // the substring "ab" at offset 1
		{"ab+", "ba", 1},  // both letters occur, "ba" itself does not
		{"a*", "aaa", 3},
		{"ab.c+*", "cabc", 4},
		{"ab+*", "abba", 4},
		{"a1+", "aa", 1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.word, func(t *testing.T) {
			expr, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
			}
			got, err := expr.LongestSubstringString(tt.word)
			if err != nil {
				t.Fatalf("LongestSubstringString(%q) failed: %v", tt.word, err)
			}
			if got != tt.want {
				t.Errorf("LongestSubstring(%q, %q) = %d, want %d", tt.pattern, tt.word, got, tt.want)
			}
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    error
	}{
		{"empty expression", "", syntax.ErrEmptyExpression},
		{"unknown symbol", "ax.", syntax.ErrUnknownExpressionSymbol},
		{"operator before operands", "+a", syntax.ErrMissingOperands},
		{"leftover operands", "ab", syntax.ErrTooManyOperands},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
		})
	}
}

func TestLongestSubstring_WordErrors(t *testing.T) {
	expr := MustCompile("a")

	if _, err := expr.LongestSubstringString(""); !errors.Is(err, syntax.ErrEmptyWord) {
		t.Errorf("empty word should report ErrEmptyWord, got %v", err)
	}
	if _, err := expr.LongestSubstringString("abd"); !errors.Is(err, syntax.ErrInvalidWordSymbol) {
		t.Errorf("word with 'd' should report ErrInvalidWordSymbol, got %v", err)
	}
	if _, err := expr.LongestSubstringString("1"); !errors.Is(err, syntax.ErrInvalidWordSymbol) {
		t.Errorf("epsilon marker should report ErrInvalidWordSymbol, got %v", err)
	}
}

func TestMustCompile(t *testing.T) {
	expr := MustCompile("ab.")
	if expr.String() != "ab." {
		t.Errorf("String() = %q", expr.String())
	}

	defer func() {
		if recover() == nil {
			t.Error("MustCompile should panic on an invalid pattern")
		}
	}()
	MustCompile("+a")
}

func TestCompileWithConfig_CustomAlphabet(t *testing.T) {
	config := DefaultConfig()
	config.Alphabet = syntax.Alphabet{Letters: []byte("xy"), Epsilon: '0'}

	expr, err := CompileWithConfig("xy.0+*", config)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	got, err := expr.LongestSubstringString("yxyx")
	if err != nil {
		t.Fatalf("LongestSubstringString failed: %v", err)
	}
	// (xy+ε)* members contain "xyxy"; "yxyx" occurs inside "xyxyxy".
	if got != 4 {
		t.Errorf("LongestSubstring = %d, want 4", got)
	}

	// The default alphabet's letters are unknown symbols here.
	if _, err := CompileWithConfig("ab.", config); !errors.Is(err, syntax.ErrUnknownExpressionSymbol) {
		t.Errorf("expected ErrUnknownExpressionSymbol, got %v", err)
	}
}

func TestExpression_StrategyIntrospection(t *testing.T) {
	finite := MustCompile("ab.")
	if finite.Strategy() != "LiteralSet" {
		t.Errorf("finite language should use LiteralSet, got %q", finite.Strategy())
	}

	infinite := MustCompile("a*")
	if infinite.Strategy() != "Witness" {
		t.Errorf("infinite language should use Witness, got %q", infinite.Strategy())
	}
	if infinite.StrategyReason() == "" {
		t.Error("StrategyReason should not be empty")
	}
}

func TestExpression_Stats(t *testing.T) {
	expr := MustCompile("a*")
	if _, err := expr.LongestSubstringString("aa"); err != nil {
		t.Fatalf("LongestSubstringString failed: %v", err)
	}
	if expr.Stats().Evaluations == 0 {
		t.Error("witness path should record evaluations")
	}
	expr.ResetStats()
	if expr.Stats().Evaluations != 0 {
		t.Error("ResetStats should zero counters")
	}
}
