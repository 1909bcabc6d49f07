package nmf

// Options configures a Factorize call.
//
// Fields:
//   - Update       — multiplicative update family (default Euclidean).
//   - Objective    — cost measure for convergence (default Frobenius).
//   - MaxIter      — hard iteration cap per run; 0 means unlimited.
//   - MinResiduals — convergence threshold on the per-iteration objective
//     improvement; the run stops once (previous − current) ≤ MinResiduals.
//     0 disables the test.
//   - TestConv     — recompute the objective only every TestConv-th
//     iteration (the stopping evaluator passes on the others). 0 means
//     test every iteration.
//   - NRun         — number of independent restarts (≥ 1).
//   - KeepBest     — when true, Factorize returns the run with the lowest
//     final objective; when false (default) the last run wins, matching
//     the historical behavior of sequential restarts.
//   - TrackFactor  — record a copy of (W, H) per completed run. Only
//     honored when NRun > 1 (single-run factors are already the result).
//   - TrackError   — record the objective value after every iteration.
//   - Tracker      — history collaborator; tracking flags are ignored
//     when nil.
//   - Callback     — invoked once per completed run with that run's Fit.
//     A non-nil error aborts the remaining runs and propagates to the
//     caller. Callbacks must not mutate the factors they receive.
//   - Seeder       — initial factor strategy. Required; there is no
//     implicit default ("none" in the classical parameter surface).
//
// Termination: with MaxIter == 0 and MinResiduals == 0 a run only stops
// when the objective increases; configure at least one limit to
// guarantee termination.
type Options struct {
	Update       UpdateRule
	Objective    Objective
	MaxIter      int
	MinResiduals float64
	TestConv     int
	NRun         int
	KeepBest     bool
	TrackFactor  bool
	TrackError   bool
	Tracker      Tracker
	Callback     func(Fit) error
	Seeder       Seeder
}

// DefaultOptions returns the conventional configuration: Euclidean
// updates against the Frobenius objective, a single run capped at 30
// iterations. A Seeder must still be supplied by the caller.
func DefaultOptions() Options {
	return Options{
		Update:    Euclidean,
		Objective: Frobenius,
		MaxIter:   30,
		NRun:      1,
	}
}
