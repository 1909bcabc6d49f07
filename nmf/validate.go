// Package nmf - validation helpers shared by the orchestrator.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(m·n) worst case (nonnegativity scan); no hidden allocations.
package nmf

import "gonum.org/v1/gonum/mat"

// validateAll verifies the target matrix, the rank and the Options.
// It returns the target's dimensions (m, n) on success.
//
// Contract:
//   - V must be non-nil, non-empty and entrywise nonnegative.
//   - rank must lie in [1, min(m, n)].
//   - Options limits must be nonnegative, NRun ≥ 1, Seeder non-nil, and
//     the Update/Objective discriminators must be recognized values.
//
// Complexity: O(m·n) time, O(1) space.
func validateAll(V mat.Matrix, rank int, opts *Options) (int, int, error) {
	// Stage 1: Options-only sanity.
	if err := validateOptions(opts); err != nil {
		return 0, 0, err
	}

	// Stage 2: target matrix shape and sign.
	if V == nil {
		return 0, 0, ErrNilMatrix
	}
	m, n := V.Dims()
	if m < 1 || n < 1 {
		return 0, 0, ErrNilMatrix
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if V.At(i, j) < 0 {
				return 0, 0, ErrNegativeInput
			}
		}
	}

	// Stage 3: rank range (after m, n are known).
	if rank < 1 || rank > m || rank > n {
		return 0, 0, ErrBadRank
	}

	return m, n, nil
}

// validateOptions checks internal consistency of Options without touching
// the target matrix.
//
// Complexity: O(1).
func validateOptions(opts *Options) error {
	switch opts.Update {
	case Euclidean, Divergence:
		// ok
	default:
		return ErrUnknownUpdate
	}
	switch opts.Objective {
	case Frobenius, KLDivergence, Connectivity:
		// ok
	default:
		return ErrUnknownObjective
	}
	if opts.NRun < 1 {
		return ErrBadOptions
	}
	if opts.MaxIter < 0 || opts.MinResiduals < 0 || opts.TestConv < 0 {
		return ErrBadOptions
	}
	if opts.Seeder == nil {
		return ErrNoSeeder
	}

	return nil
}

// validateFactors checks that a seeded factor pair matches the target
// shape and the requested rank.
//
// Complexity: O(1).
func validateFactors(W, H *mat.Dense, m, n, rank int) error {
	if W == nil || H == nil {
		return ErrDimensionMismatch
	}
	wr, wc := W.Dims()
	hr, hc := H.Dims()
	if wr != m || wc != rank || hr != rank || hc != n {
		return ErrDimensionMismatch
	}

	return nil
}
