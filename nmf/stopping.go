// Package nmf - stopping evaluator.
//
// One pure function over (previous objective, current objective,
// iteration index) consulted once per iteration before the next update.
// Rules are ordered; the first match wins. An objective increase is a
// normal termination signal (numerical divergence or an update/objective
// mismatch), never an error.
package nmf

// shouldContinue reports whether the run loop should perform another
// update step.
//
// Decision order:
//  1. TestConv configured and iter not a multiple of it → continue
//     (the objective was not recomputed; convergence cannot be judged).
//  2. MaxIter configured and reached → stop.
//  3. MinResiduals configured, iter > 0, and the improvement
//     (pobj − cobj) ≤ MinResiduals → stop.
//  4. iter > 0 and the objective increased → stop.
//  5. Otherwise → continue.
//
// With no limits configured the loop only terminates if the objective
// ever increases (rule 4); callers wanting guaranteed termination set
// MaxIter or MinResiduals (see Options).
func shouldContinue(opts *Options, pobj, cobj float64, iter int) bool {
	if opts.TestConv > 0 && iter%opts.TestConv != 0 {
		return true
	}
	if opts.MaxIter > 0 && opts.MaxIter <= iter {
		return false
	}
	if opts.MinResiduals > 0 && iter > 0 && pobj-cobj <= opts.MinResiduals {
		return false
	}
	if iter > 0 && cobj > pobj {
		return false
	}

	return true
}
