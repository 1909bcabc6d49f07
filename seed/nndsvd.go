// Package seed - NNDSVD seeding (Boutsidis & Gallopoulos, 2008).
//
// Nonnegative Double Singular Value Decomposition builds (W, H) from the
// leading rank singular triplets of V: each triplet is split into its
// positive and negative sections and the section with the larger energy
// is kept, scaled to preserve the singular value. The result is
// deterministic (up to the "ar" variant's seeded noise) and typically
// converges in far fewer multiplicative updates than random seeding.
package seed

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// NNDSVDVariant selects how NNDSVD treats the zeros its splitting leaves
// behind.
type NNDSVDVariant int

const (
	// Plain keeps the zeros. Best for sparse factors; the engine's
	// stabilizer floors them at machine epsilon anyway.
	Plain NNDSVDVariant = iota

	// Average fills zeros with the mean of V ("nndsvda"). Better for
	// dense factors.
	Average

	// AverageRandom fills zeros with small random multiples of the mean
	// of V ("nndsvdar"): cheap tie-breaking noise on top of Average.
	AverageRandom
)

// NNDSVD seeds factors from the truncated SVD of the target.
type NNDSVD struct {
	// Variant selects the zero-filling policy (default Plain).
	Variant NNDSVDVariant

	// Seed drives the AverageRandom noise; 0 means the fixed default
	// seed. Unused by the other variants.
	Seed int64

	rng *rand.Rand
}

// Initialize computes the NNDSVD factors of shape (m×rank, rank×n).
//
// Errors: ErrSVDFailed when the underlying SVD does not converge, plus
// the shared target validation sentinels.
//
// Complexity: O(m·n·min(m,n)) time (the thin SVD dominates).
func (s *NNDSVD) Initialize(V mat.Matrix, rank int) (*mat.Dense, *mat.Dense, error) {
	m, n, _, err := inspect(V, rank)
	if err != nil {
		return nil, nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(V, mat.SVDThin); !ok {
		return nil, nil, ErrSVDFailed
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sv := svd.Values(nil)

	W := mat.NewDense(m, rank, nil)
	H := mat.NewDense(rank, n, nil)

	// Leading triplet: by Perron–Frobenius the first singular vectors of
	// a nonnegative matrix are single-signed, so |·| only fixes the SVD's
	// sign ambiguity.
	lead := math.Sqrt(sv[0])
	for i := 0; i < m; i++ {
		W.Set(i, 0, lead*math.Abs(u.At(i, 0)))
	}
	for j := 0; j < n; j++ {
		H.Set(0, j, lead*math.Abs(v.At(j, 0)))
	}

	for k := 1; k < rank; k++ {
		xp, xn, nxp, nxn := splitColumn(&u, k, m)
		yp, yn, nyp, nyn := splitColumn(&v, k, n)

		// Keep the section pair with the larger energy product.
		mp := nxp * nyp
		mn := nxn * nyn
		switch {
		case mp >= mn && mp > 0:
			sig := math.Sqrt(sv[k] * mp)
			setScaledColumn(W, k, xp, sig/nxp)
			setScaledRow(H, k, yp, sig/nyp)
		case mn > 0:
			sig := math.Sqrt(sv[k] * mn)
			setScaledColumn(W, k, xn, sig/nxn)
			setScaledRow(H, k, yn, sig/nyn)
		}
		// Both sections empty: the triplet contributes nothing; the
		// row/column stays zero and the variant policy below applies.
	}

	s.fillZeros(W, H, meanOf(V, m, n))

	return W, H, nil
}

// splitColumn separates column k of a into its positive and negated
// negative sections and returns both with their Euclidean norms.
func splitColumn(a *mat.Dense, k, rows int) (pos, neg []float64, npos, nneg float64) {
	pos = make([]float64, rows)
	neg = make([]float64, rows)
	for i := 0; i < rows; i++ {
		x := a.At(i, k)
		if x > 0 {
			pos[i] = x
			npos += x * x
		} else {
			neg[i] = -x
			nneg += x * x
		}
	}

	return pos, neg, math.Sqrt(npos), math.Sqrt(nneg)
}

func setScaledColumn(a *mat.Dense, k int, col []float64, scale float64) {
	for i, x := range col {
		a.Set(i, k, scale*x)
	}
}

func setScaledRow(a *mat.Dense, k int, row []float64, scale float64) {
	for j, x := range row {
		a.Set(k, j, scale*x)
	}
}

func meanOf(V mat.Matrix, m, n int) float64 {
	var sum float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum += V.At(i, j)
		}
	}

	return sum / float64(m*n)
}

// fillZeros applies the variant's zero policy to both factors.
func (s *NNDSVD) fillZeros(W, H *mat.Dense, avg float64) {
	switch s.Variant {
	case Average:
		replaceZeros(W, func() float64 { return avg })
		replaceZeros(H, func() float64 { return avg })
	case AverageRandom:
		if s.rng == nil {
			s.rng = rngFromSeed(s.Seed)
		}
		small := func() float64 { return avg / 100 * s.rng.Float64() }
		replaceZeros(W, small)
		replaceZeros(H, small)
	default:
		// Plain: zeros stay.
	}
}

func replaceZeros(a *mat.Dense, fill func() float64) {
	raw := a.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			if v == 0 {
				row[j] = fill()
			}
		}
	}
}
