// Package nmf computes Nonnegative Matrix Factorizations of dense
// matrices by iterative multiplicative updates, with pluggable update
// rules, objective functions and multi-run restarts.
//
// 🚀 What is NMF?
//
//	Given a nonnegative m×n target V and a rank r ≪ min(m,n), NMF finds
//	nonnegative W (m×r) and H (r×n) minimizing a divergence between V
//	and W·H.  Columns of W are learned component patterns; columns of H
//	weight those patterns per sample.  Widely used for:
//	  • Molecular pattern discovery & class detection
//	  • Topic modeling over term-document matrices
//	  • Image part decomposition & source separation
//	  • Soft clustering with interpretable parts
//
// ✨ Key features:
//   - two update families: Euclidean (Lee–Seung) and KL divergence
//   - three objectives: Frobenius, generalized KL, connectivity change
//   - stopping on iteration cap, residual threshold, or objective rise
//   - periodic convergence testing (TestConv) to amortize objective cost
//   - multi-run restarts with callbacks, history tracking and optional
//     best-of-N selection (KeepBest)
//   - epsilon stabilization after every update step
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvlnmf/nmf"
//	  "github.com/katalvlaran/lvlnmf/seed"
//	)
//
//	opts := nmf.DefaultOptions()
//	opts.MaxIter = 100
//	opts.Seeder = &seed.Random{Seed: 42}
//
//	fit, err := nmf.Factorize(V, 2, &opts)
//	// fit.W, fit.H, fit.Objective, fit.Iterations
//
// The engine is single-threaded and blocking: a Factorize call runs to
// completion (or to a configured limit) before returning, and callbacks
// and trackers are invoked synchronously on the calling goroutine.
//
// See example_test.go for focused usage and ../examples for scenarios.
package nmf
