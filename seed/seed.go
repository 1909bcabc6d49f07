// Package seed - shared validation and fill helpers.
package seed

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// inspect validates the target/rank pair shared by every strategy and
// returns the target's dimensions plus its maximum entry (the scale used
// by uniform fills).
//
// Complexity: O(m·n) time, O(1) space.
func inspect(V mat.Matrix, rank int) (m, n int, vmax float64, err error) {
	if V == nil {
		return 0, 0, 0, ErrNilMatrix
	}
	m, n = V.Dims()
	if m < 1 || n < 1 {
		return 0, 0, 0, ErrNilMatrix
	}
	if rank < 1 || rank > m || rank > n {
		return 0, 0, 0, ErrBadRank
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if v := V.At(i, j); v > vmax {
				vmax = v
			}
		}
	}

	return m, n, vmax, nil
}

// uniformFill fills a with entries drawn uniformly from (0, scale].
// A zero or negative scale falls back to 1 so an all-zero target still
// yields usable factors.
func uniformFill(a *mat.Dense, scale float64, rng *rand.Rand) {
	if scale <= 0 {
		scale = 1
	}
	raw := a.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j := range row {
			// 1-Float64() maps [0,1) to (0,1]: never seeds an exact zero.
			row[j] = scale * (1 - rng.Float64())
		}
	}
}
