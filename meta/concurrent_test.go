package meta

import (
	"sync"
	"testing"
)

// TestConcurrentQueries checks that a single Engine answers concurrent
// LongestSubstring calls correctly. The compiled expression, literal set and
// config are immutable and every query builds its own evaluation state, so
// goroutines share nothing mutable but the stats counters.
func TestConcurrentQueries(t *testing.T) {
	engine, err := Compile("ab.c+*")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	queries := []struct {
		word string
		want int
	}{
		{"abcab", 5},
		{"aab", 2}, // "ab" matches, "aab" does not
		{"ccc", 3},
		{"ba", 2}, // inside the member "abab"
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rep := 0; rep < 20; rep++ {
				for _, q := range queries {
					got, err := engine.LongestSubstring([]byte(q.word))
					if err != nil {
						t.Errorf("LongestSubstring(%q) failed: %v", q.word, err)
						return
					}
					if got != q.want {
						t.Errorf("LongestSubstring(%q) = %d, want %d", q.word, got, q.want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

// TestParallelismMatchesSerial checks that the parallel solver loop and the
// serial one produce identical answers.
func TestParallelismMatchesSerial(t *testing.T) {
	words := []string{"a", "abba", "cabacab", "bbbbbbab", "abcabcabc"}

	for _, pattern := range []string{"a*", "ab+*", "ab.c+*", "ab.ba.+"} {
		serialCfg := DefaultConfig()
		serialCfg.EnableLiteralSet = false
		serialCfg.Parallelism = 1
		serial, err := CompileWithConfig(pattern, serialCfg)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", pattern, err)
		}

		parallelCfg := serialCfg
		parallelCfg.Parallelism = 4
		parallel, err := CompileWithConfig(pattern, parallelCfg)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", pattern, err)
		}

		for _, word := range words {
			a, err := serial.LongestSubstring([]byte(word))
			if err != nil {
				t.Fatalf("serial solve failed on (%q, %q): %v", pattern, word, err)
			}
			b, err := parallel.LongestSubstring([]byte(word))
			if err != nil {
				t.Fatalf("parallel solve failed on (%q, %q): %v", pattern, word, err)
			}
			if a != b {
				t.Errorf("worker count changed the answer on (%q, %q): serial=%d parallel=%d", pattern, word, a, b)
			}
		}
	}
}
