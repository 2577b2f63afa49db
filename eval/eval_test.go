package eval

import (
	"errors"
	"testing"

	"github.com/coregx/subword/syntax"
)

func mustParse(t *testing.T, pattern string) *syntax.Expr {
	t.Helper()
	expr, err := syntax.Parse(pattern, syntax.DefaultAlphabet())
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", pattern, err)
	}
	return expr
}

func TestEvaluate_Containment(t *testing.T) {
	tests := []struct {
		pattern string
		word    string
		want    bool
	}{
		{"a", "a", true},
		{"a", "b", false},
		{"ab.", "ab", true},
		{"ab.", "a", true},  // "a" occurs inside the member "ab"
		{"ab.", "ba", false},
		{"ab+", "a", true},
		{"ab+", "b", true},
		{"ab+", "ba", false}, // no length-2 member or container in {a, b}
		{"a*", "aaa", true},
		{"a*", "aab", false}, // 'b' never occurs in any member of a*
		{"ab+*", "abba", true},
		{"1", "a", false}, // nothing non-empty occurs inside the empty string
		{"a1.", "a", true},
		{"ab.c.", "bc", true}, // "bc" inside the member "abc"
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.word, func(t *testing.T) {
			root, err := Evaluate(mustParse(t, tt.pattern), []byte(tt.word))
			if err != nil {
				t.Fatalf("Evaluate failed: %v", err)
			}
			if root.HasWordAsSubstring() != tt.want {
				t.Errorf("HasWordAsSubstring = %v, want %v", root.HasWordAsSubstring(), tt.want)
			}
		})
	}
}

func TestEvaluate_PopOrder(t *testing.T) {
	// "ab." concatenates a then b: first pop is the right operand.
	word := []byte("ab")

	ab, err := Evaluate(mustParse(t, "ab."), word)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	ba, err := Evaluate(mustParse(t, "ba."), word)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if !ab.Substring(0, 2) {
		t.Error("\"ab\" should be a member of L(a·b)")
	}
	if ba.Substring(0, 2) {
		t.Error("\"ab\" should not be a member of L(b·a)")
	}
}

func TestEvaluate_ArityErrors(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"+a", syntax.ErrMissingOperands},
		{"a+", syntax.ErrMissingOperands},
		{"*", syntax.ErrMissingOperands},
		{"ab", syntax.ErrTooManyOperands},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := Evaluate(mustParse(t, tt.pattern), []byte("a"))
			if !errors.Is(err, tt.want) {
				t.Errorf("Evaluate(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
		})
	}
}

func TestEvaluate_WordValidation(t *testing.T) {
	expr := mustParse(t, "a")

	if _, err := Evaluate(expr, nil); !errors.Is(err, syntax.ErrEmptyWord) {
		t.Error("empty word should report ErrEmptyWord")
	}
	if _, err := Evaluate(expr, []byte("ad")); !errors.Is(err, syntax.ErrInvalidWordSymbol) {
		t.Error("word with 'd' should report ErrInvalidWordSymbol")
	}
	if _, err := Evaluate(expr, []byte("1")); !errors.Is(err, syntax.ErrInvalidWordSymbol) {
		t.Error("epsilon marker in word should report ErrInvalidWordSymbol")
	}
}

func TestEvaluate_FreshStatePerCall(t *testing.T) {
	expr := mustParse(t, "ab.c+*")

	for _, word := range []string{"abc", "c", "abc"} {
		first, err := Evaluate(expr, []byte(word))
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		second, err := Evaluate(expr, []byte(word))
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		if !first.Equal(second) {
			t.Errorf("re-evaluating (%q, %q) should yield bit-identical witnesses", expr.Pattern(), word)
		}
	}
}
