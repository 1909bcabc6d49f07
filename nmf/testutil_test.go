package nmf_test

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// randomTarget builds a deterministic m×n nonnegative matrix with entries
// in [0, 1).
func randomTarget(m, n int, seedVal int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seedVal))
	data := make([]float64, m*n)
	for i := range data {
		data[i] = rng.Float64()
	}

	return mat.NewDense(m, n, data)
}

// froResidual computes Σ (V − W·H)² independently of the engine.
func froResidual(V mat.Matrix, W, H *mat.Dense) float64 {
	var wh mat.Dense
	wh.Mul(W, H)

	m, n := V.Dims()
	var sum float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			d := V.At(i, j) - wh.At(i, j)
			sum += d * d
		}
	}

	return sum
}

// denseOf is a shorthand mat.NewDense with a test context.
func denseOf(t *testing.T, r, c int, data []float64) *mat.Dense {
	t.Helper()

	return mat.NewDense(r, c, data)
}

// minEntry returns the smallest entry of a, or −Inf when a contains a
// NaN (so positivity assertions fail loudly on non-finite values).
func minEntry(a *mat.Dense) float64 {
	lowest := math.Inf(1)
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			if math.IsNaN(v) {
				return math.Inf(-1)
			}
			if v < lowest {
				lowest = v
			}
		}
	}

	return lowest
}

// maxEntry returns the largest entry of a.
func maxEntry(a *mat.Dense) float64 {
	highest := math.Inf(-1)
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v > highest {
				highest = v
			}
		}
	}

	return highest
}

// nonIncreasing reports whether the trace never rises by more than tol
// between consecutive entries.
func nonIncreasing(trace []float64, tol float64) bool {
	for i := 1; i < len(trace); i++ {
		if trace[i] > trace[i-1]+tol {
			return false
		}
	}

	return true
}
