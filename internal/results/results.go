// Package results collects per-algorithm outcomes of a comparison run
// and ranks them.
package results

import (
	"time"

	"github.com/san-kum/pathlab/internal/search"
)

// Result is one completed run: algorithm name, path length in unit steps
// (search.Unreachable when no path exists) and the animated wall-clock
// time. Records are never mutated after creation.
type Result struct {
	Algorithm  string        `json:"algorithm"`
	PathLength int           `json:"path_length"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Reachable reports whether the run found a path.
func (r Result) Reachable() bool { return r.PathLength != search.Unreachable }

// Recorder is an append-only result set in execution order. Running the
// same algorithm twice records two entries.
type Recorder struct {
	results []Result
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Add(algorithm string, pathLength int, elapsed time.Duration) {
	r.results = append(r.results, Result{Algorithm: algorithm, PathLength: pathLength, Elapsed: elapsed})
}

func (r *Recorder) Len() int { return len(r.results) }

// Results returns a copy in insertion order.
func (r *Recorder) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Best picks the reachable result with the shortest path, ties broken by
// the smaller elapsed time. ok is false when every entry is unreachable
// or the set is empty.
func (r *Recorder) Best() (best Result, ok bool) {
	for _, res := range r.results {
		if !res.Reachable() {
			continue
		}
		if !ok ||
			res.PathLength < best.PathLength ||
			(res.PathLength == best.PathLength && res.Elapsed < best.Elapsed) {
			best = res
			ok = true
		}
	}
	return best, ok
}
