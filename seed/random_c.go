package seed

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// RandomC seeds W from the densest columns of the target, in the spirit
// of the C matrix of a CUR decomposition: each basis column is the mean
// of PCol columns sampled from the LCol columns of V with the largest
// Euclidean norm. H is seeded uniformly like Random.
//
// Dense-column averaging gives W columns that already live in the column
// space of V's heavy samples, which tends to beat plain random seeding
// on sparse targets.
type RandomC struct {
	// Seed selects the RNG stream; 0 means the fixed default seed.
	Seed int64

	// PCol is the number of columns averaged per basis column.
	// 0 means ceil(n/5).
	PCol int

	// LCol is the size of the dense-column pool sampled from.
	// 0 means ceil(n/2).
	LCol int

	rng *rand.Rand
}

// Initialize returns factors of shape (m×rank, rank×n).
//
// Complexity: O(m·n + n·log n + rank·PCol·m) time.
func (s *RandomC) Initialize(V mat.Matrix, rank int) (*mat.Dense, *mat.Dense, error) {
	m, n, vmax, err := inspect(V, rank)
	if err != nil {
		return nil, nil, err
	}
	if s.rng == nil {
		s.rng = rngFromSeed(s.Seed)
	}

	p := s.PCol
	if p < 1 {
		p = ceilDiv(n, 5)
	}
	l := s.LCol
	if l < 1 {
		l = ceilDiv(n, 2)
	}
	if l > n {
		l = n
	}

	// Rank columns by Euclidean norm, descending; ties keep index order.
	pool := topColumnsByNorm(V, m, n, l)

	W := mat.NewDense(m, rank, nil)
	for k := 0; k < rank; k++ {
		for t := 0; t < p; t++ {
			j := pool[s.rng.Intn(len(pool))]
			for i := 0; i < m; i++ {
				W.Set(i, k, W.At(i, k)+V.At(i, j)/float64(p))
			}
		}
	}

	H := mat.NewDense(rank, n, nil)
	uniformFill(H, vmax, s.rng)

	return W, H, nil
}

// topColumnsByNorm returns the indices of the l columns of V with the
// largest Euclidean norm.
func topColumnsByNorm(V mat.Matrix, m, n, l int) []int {
	norms := make([]float64, n)
	for j := 0; j < n; j++ {
		var sq float64
		for i := 0; i < m; i++ {
			v := V.At(i, j)
			sq += v * v
		}
		norms[j] = math.Sqrt(sq)
	}

	idx := make([]int, n)
	for j := range idx {
		idx[j] = j
	}
	sort.SliceStable(idx, func(a, b int) bool { return norms[idx[a]] > norms[idx[b]] })

	return idx[:l]
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
