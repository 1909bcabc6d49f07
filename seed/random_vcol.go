package seed

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomVCol seeds each column of W as the mean of PCol random columns
// of the target, and each row of H as the mean of PRow random rows.
// Cheaper than RandomC (no column ranking) while still placing the seed
// inside the data's span.
type RandomVCol struct {
	// Seed selects the RNG stream; 0 means the fixed default seed.
	Seed int64

	// PCol is the number of V columns averaged per W column.
	// 0 means ceil(n/5).
	PCol int

	// PRow is the number of V rows averaged per H row.
	// 0 means ceil(m/5).
	PRow int

	rng *rand.Rand
}

// Initialize returns factors of shape (m×rank, rank×n).
//
// Complexity: O(rank·(PCol·m + PRow·n)) time.
func (s *RandomVCol) Initialize(V mat.Matrix, rank int) (*mat.Dense, *mat.Dense, error) {
	m, n, _, err := inspect(V, rank)
	if err != nil {
		return nil, nil, err
	}
	if s.rng == nil {
		s.rng = rngFromSeed(s.Seed)
	}

	pc := s.PCol
	if pc < 1 {
		pc = ceilDiv(n, 5)
	}
	pr := s.PRow
	if pr < 1 {
		pr = ceilDiv(m, 5)
	}

	W := mat.NewDense(m, rank, nil)
	for k := 0; k < rank; k++ {
		for t := 0; t < pc; t++ {
			j := s.rng.Intn(n)
			for i := 0; i < m; i++ {
				W.Set(i, k, W.At(i, k)+V.At(i, j)/float64(pc))
			}
		}
	}

	H := mat.NewDense(rank, n, nil)
	for k := 0; k < rank; k++ {
		for t := 0; t < pr; t++ {
			i := s.rng.Intn(m)
			for j := 0; j < n; j++ {
				H.Set(k, j, H.At(k, j)+V.At(i, j)/float64(pr))
			}
		}
	}

	return W, H, nil
}
