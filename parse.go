package pathjson

import "iter"

// Result is one matched (path, value) pair, the form ParseSeq yields.
type Result struct {
	Path  string
	Value Value
}

// Parse runs a whole input through a fresh Engine in one call and
// collects every matched pair, for callers that already have the full
// document in memory and just want the filtered results. It is a thin
// convenience over Engine: Push the whole slice, Finalize, done.
func Parse(patterns Patterns, data []byte) ([]Result, error) {
	var results []Result
	eng := NewEngine(patterns, func(path string, v Value) {
		results = append(results, Result{Path: path, Value: v})
	})
	if err := eng.Push(data); err != nil {
		return nil, err
	}
	if err := eng.Finalize(); err != nil {
		return nil, err
	}
	return results, nil
}

// ParseSeq streams chunks (as would arrive from a network connection or
// a file read in fixed-size pieces) through an Engine and yields each
// matched pair as it becomes available, in the order Emit would have
// been called. Iteration stops, yielding the error once, on the first
// parse failure.
func ParseSeq(patterns Patterns, chunks iter.Seq[[]byte]) iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		var pending []Result
		eng := NewEngine(patterns, func(path string, v Value) {
			pending = append(pending, Result{Path: path, Value: v})
		})
		flush := func() bool {
			for _, r := range pending {
				if !yield(r, nil) {
					return false
				}
			}
			pending = pending[:0]
			return true
		}
		for chunk := range chunks {
			if err := eng.Push(chunk); err != nil {
				yield(Result{}, err)
				return
			}
			if !flush() {
				return
			}
		}
		if err := eng.Finalize(); err != nil {
			yield(Result{}, err)
			return
		}
		flush()
	}
}
