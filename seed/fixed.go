package seed

import "gonum.org/v1/gonum/mat"

// Fixed returns caller-supplied factors. Every Initialize call hands out
// fresh deep copies, so the engine's in-place updates never touch the
// originals and every run restarts from the same point.
type Fixed struct {
	// W is the m×rank basis seed; H is the rank×n mixture seed.
	W, H *mat.Dense
}

// Initialize validates the stored factors against V and rank and returns
// copies of them.
//
// Errors: ErrNilFactors when either factor is missing; ErrShapeMismatch
// when shapes disagree with (m×rank, rank×n); plus the shared target
// validation sentinels.
//
// Complexity: O(m·rank + rank·n) time (the copies).
func (s Fixed) Initialize(V mat.Matrix, rank int) (*mat.Dense, *mat.Dense, error) {
	m, n, _, err := inspect(V, rank)
	if err != nil {
		return nil, nil, err
	}
	if s.W == nil || s.H == nil {
		return nil, nil, ErrNilFactors
	}
	wr, wc := s.W.Dims()
	hr, hc := s.H.Dims()
	if wr != m || wc != rank || hr != rank || hc != n {
		return nil, nil, ErrShapeMismatch
	}

	return mat.DenseCopyOf(s.W), mat.DenseCopyOf(s.H), nil
}
