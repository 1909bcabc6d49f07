package seed

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Random seeds both factors with entries uniform in (0, max(V)].
//
// The zero value is ready to use and deterministic (Seed 0 selects the
// fixed default seed). The RNG stream advances across calls, so each run
// of a multi-run factorization starts from a different point.
type Random struct {
	// Seed selects the RNG stream; 0 means the fixed default seed.
	Seed int64

	rng *rand.Rand
}

// Initialize returns uniform-random nonnegative factors of shape
// (m×rank, rank×n).
//
// Complexity: O(m·n + (m+n)·rank) time.
func (s *Random) Initialize(V mat.Matrix, rank int) (*mat.Dense, *mat.Dense, error) {
	m, n, vmax, err := inspect(V, rank)
	if err != nil {
		return nil, nil, err
	}
	if s.rng == nil {
		s.rng = rngFromSeed(s.Seed)
	}

	W := mat.NewDense(m, rank, nil)
	H := mat.NewDense(rank, n, nil)
	uniformFill(W, vmax, s.rng)
	uniformFill(H, vmax, s.rng)

	return W, H, nil
}
