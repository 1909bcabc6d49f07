// Package nmf - factorization orchestrator.
//
// Factorize is the composition root: it resolves and validates the
// configuration once, then drives NRun independent runs of
// seed → (update → stabilize → objective) → stop, reporting each run to
// the optional callback and tracker collaborators.
//
// Design principles:
//   - Deterministic given a deterministic Seeder; no time-based randomness.
//   - Strict sentinels: only errors from types.go (plus Seeder/callback
//     errors forwarded as-is).
//   - Exactly one live (W, H) pair per run; history receives copies.
//   - Sequential runs; the last run's fit is the result unless KeepBest.
package nmf

import "gonum.org/v1/gonum/mat"

// Factorize computes a rank-r NMF of the nonnegative target V.
//
// V is read-only for the duration of the call. The returned Fit holds the
// factors of the last run (or of the best-objective run when
// Options.KeepBest is set), the final objective value and the iteration
// count of that run.
//
// Errors: sentinel configuration errors from types.go before any run
// starts; Seeder errors and callback errors are forwarded as-is, the
// latter aborting any remaining runs while keeping history already
// recorded by the tracker.
//
// Complexity: O(NRun · iters · m·n·r) time, O(m·r + r·n + m·n) space.
func Factorize(V mat.Matrix, rank int, opts *Options) (Fit, error) {
	// Snapshot the configuration; it is read-only during execution.
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	m, n, err := validateAll(V, rank, &o)
	if err != nil {
		return Fit{}, err
	}

	// Tracking is active when factors are wanted across restarts or an
	// error trace is wanted at all.
	tracking := o.Tracker != nil && ((o.TrackFactor && o.NRun > 1) || o.TrackError)

	var result Fit
	for run := 0; run < o.NRun; run++ {
		W, H, serr := o.Seeder.Initialize(V, rank)
		if serr != nil {
			return Fit{}, serr
		}
		if err = validateFactors(W, H, m, n, rank); err != nil {
			return Fit{}, err
		}

		st := newConnState(n)
		cobj := evalObjective(o.Objective, V, W, H, st)
		pobj := cobj
		iter := 0

		for shouldContinue(&o, pobj, cobj, iter) {
			pobj = cobj
			applyUpdate(o.Update, V, W, H)
			stabilize(W)
			stabilize(H)
			// Periodic testing: reuse the previous objective between
			// test points instead of paying for a recomputation.
			if o.TestConv == 0 || iter%o.TestConv == 0 {
				cobj = evalObjective(o.Objective, V, W, H, st)
			}
			iter++
			if tracking && o.TrackError {
				o.Tracker.TrackError(run, cobj)
			}
		}

		fit := Fit{W: W, H: H, Objective: cobj, Iterations: iter, Run: run}
		if o.Callback != nil {
			if cerr := o.Callback(fit); cerr != nil {
				return Fit{}, cerr
			}
		}
		if tracking && o.TrackFactor {
			// Copies: later runs mutate W/H in place and must not
			// corrupt recorded history.
			o.Tracker.TrackFactor(run, mat.DenseCopyOf(W), mat.DenseCopyOf(H))
		}

		switch {
		case run == 0 || !o.KeepBest:
			result = fit
		case fit.Objective < result.Objective:
			result = fit
		}
	}

	return result, nil
}
