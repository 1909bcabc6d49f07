package track

import "gonum.org/v1/gonum/mat"

// FactorPair is one recorded (W, H) snapshot. The engine hands over deep
// copies, so snapshots stay stable while later runs mutate the live
// factors in place.
type FactorPair struct {
	W, H *mat.Dense
}

// History is an in-memory, append-only run record. The zero value is not
// usable; construct with NewHistory. Not safe for concurrent use (the
// engine invokes trackers synchronously on one goroutine).
type History struct {
	residuals map[int][]float64
	factors   map[int]FactorPair
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{
		residuals: make(map[int][]float64),
		factors:   make(map[int]FactorPair),
	}
}

// TrackError appends one residual observation to the run's trace.
func (h *History) TrackError(run int, residual float64) {
	h.residuals[run] = append(h.residuals[run], residual)
}

// TrackFactor records the run's final factor snapshot. A second call for
// the same run overwrites the first.
func (h *History) TrackFactor(run int, W, H *mat.Dense) {
	h.factors[run] = FactorPair{W: W, H: H}
}

// Residuals returns the recorded residual trace of a run, in iteration
// order, or nil when nothing was recorded.
func (h *History) Residuals(run int) []float64 {
	return h.residuals[run]
}

// Factors returns the recorded factor snapshot of a run.
func (h *History) Factors(run int) (FactorPair, bool) {
	fp, ok := h.factors[run]

	return fp, ok
}

// Runs returns the number of runs with at least one recording.
func (h *History) Runs() int {
	seen := make(map[int]struct{}, len(h.residuals)+len(h.factors))
	for run := range h.residuals {
		seen[run] = struct{}{}
	}
	for run := range h.factors {
		seen[run] = struct{}{}
	}

	return len(seen)
}
