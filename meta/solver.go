package meta

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/subword/eval"
)

// longestWitness answers a query on the general witness path: for every
// candidate substring word[s:s+len], evaluate the expression's witness
// algebra against it and read the containment bit, tracking the maximum
// matching length.
//
// Candidate evaluations are fully independent — they share only the immutable
// token stream and the word — so start offsets are fanned out across workers
// and reduced with a plain max. Worker count never changes the answer.
func (e *Engine) longestWitness(word []byte) (int, error) {
	n := len(word)
	workers := e.config.workers()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return e.longestWitnessRange(word, 0, n)
	}

	type result struct {
		best int
		err  error
	}

	var (
		next    int64 = -1
		wg      sync.WaitGroup
		results = make(chan result, workers)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := 0
			for {
				start := int(atomic.AddInt64(&next, 1))
				if start >= n {
					results <- result{best: local}
					return
				}
				best, err := e.longestWitnessRange(word, start, start+1)
				if err != nil {
					results <- result{err: err}
					return
				}
				if best > local {
					local = best
				}
			}
		}()
	}
	wg.Wait()
	close(results)

	best := 0
	for r := range results {
		if r.err != nil {
			return 0, r.err
		}
		if r.best > best {
			best = r.best
		}
	}
	return best, nil
}

// longestWitnessRange runs the inner length loop for start offsets in
// [from, to). Every evaluation builds fresh leaf witnesses for its own test
// word; nothing carries over between iterations.
func (e *Engine) longestWitnessRange(word []byte, from, to int) (int, error) {
	n := len(word)
	best := 0
	for start := from; start < to; start++ {
		for length := 1; length <= n-start; length++ {
			root, err := eval.Evaluate(e.expr, word[start:start+length])
			if err != nil {
				return 0, err
			}
			atomic.AddUint64(&e.stats.Evaluations, 1)
			if root.HasWordAsSubstring() && length > best {
				best = length
			}
		}
	}
	return best, nil
}
