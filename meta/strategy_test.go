package meta

import (
	"strings"
	"testing"
)

func TestSelectStrategy(t *testing.T) {
	tests := []struct {
		pattern string
		want    Strategy
	}{
		{"a", UseLiteralSet},
		{"ab.c+", UseLiteralSet},
		{"1*", UseLiteralSet}, // star of epsilon stays finite
		{"a*", UseWitness},
		{"ab+*", UseWitness},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			engine, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) failed: %v", tt.pattern, err)
			}
			if engine.Strategy() != tt.want {
				t.Errorf("strategy = %v, want %v", engine.Strategy(), tt.want)
			}
		})
	}
}

func TestSelectStrategy_Disabled(t *testing.T) {
	config := DefaultConfig()
	config.EnableLiteralSet = false

	engine, err := CompileWithConfig("ab.", config)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if engine.Strategy() != UseWitness {
		t.Errorf("disabled fast path should force UseWitness, got %v", engine.Strategy())
	}
	if !strings.Contains(engine.StrategyReason(), "disabled") {
		t.Errorf("reason should mention the disabled fast path, got %q", engine.StrategyReason())
	}
}

func TestSelectStrategy_CapsForceWitness(t *testing.T) {
	config := DefaultConfig()
	config.MaxLiterals = 2

	// (a+b)·(a+b) has four members, over the cap.
	engine, err := CompileWithConfig("ab+ab+.", config)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if engine.Strategy() != UseWitness {
		t.Errorf("capped enumeration should force UseWitness, got %v", engine.Strategy())
	}
}

func TestStrategy_String(t *testing.T) {
	if UseWitness.String() != "Witness" {
		t.Errorf("UseWitness.String() = %q", UseWitness.String())
	}
	if UseLiteralSet.String() != "LiteralSet" {
		t.Errorf("UseLiteralSet.String() = %q", UseLiteralSet.String())
	}
	if Strategy(42).String() != "Strategy(42)" {
		t.Errorf("unknown strategy String() = %q", Strategy(42).String())
	}
}
