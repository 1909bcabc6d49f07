// Package nmf - multiplicative update rules.
//
// Both rules mutate (W, H) in place given a read-only V, and both assume
// the factors are already nonnegative and stabilized. H is always updated
// first with the old W, then W with the new H; this ordering carries the
// Lee–Seung non-increase guarantee and must not be swapped.
//
// Singularity policy: the stabilizer keeps denominators ≥ machEps, but a
// quotient can still overflow or hit 0/0 through intermediate products.
// Such entries are clamped to a large finite sentinel instead of
// propagating NaN/±Inf, so the stopping evaluator's ordering comparisons
// stay well-defined.
package nmf

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// quotientCap replaces non-finite quotient results. Large enough to trip
// the divergence stopping rule on the next objective comparison.
const quotientCap = math.MaxFloat64

// applyUpdate routes to the configured update family.
func applyUpdate(rule UpdateRule, V mat.Matrix, W, H *mat.Dense) {
	switch rule {
	case Divergence:
		divergenceUpdate(V, W, H)
	default:
		euclideanUpdate(V, W, H)
	}
}

// euclideanUpdate applies the multiplicative gradient-descent step
// minimizing squared Frobenius distance:
//
//	H ← H ⊙ (Wᵗ·V) ⊘ (Wᵗ·W·H)
//	W ← W ⊙ (V·Hᵗ) ⊘ (W·H·Hᵗ)
//
// Complexity: O(m·n·r) time, O(m·r + r·n + r²) extra space.
func euclideanUpdate(V mat.Matrix, W, H *mat.Dense) {
	// H step: numerator Wᵗ·V, denominator (Wᵗ·W)·H.
	var num, gram, den mat.Dense
	num.Mul(W.T(), V)
	gram.Mul(W.T(), W)
	den.Mul(&gram, H)
	mulQuotient(H, &num, &den)

	// W step: numerator V·Hᵗ, denominator W·(H·Hᵗ), using the new H.
	num.Reset()
	gram.Reset()
	den.Reset()
	num.Mul(V, H.T())
	gram.Mul(H, H.T())
	den.Mul(W, &gram)
	mulQuotient(W, &num, &den)
}

// divergenceUpdate applies the multiplicative step minimizing generalized
// KL divergence:
//
//	H ← H ⊙ [Wᵗ·(V ⊘ W·H)] ⊘ colsum(W)   (divisor broadcast across columns)
//	W ← W ⊙ [(V ⊘ W·H)·Hᵗ] ⊘ rowsum(H)   (divisor broadcast across rows)
//
// The V ⊘ W·H quotient is recomputed from the updated H before the W
// step; the two statements must not share it.
//
// Complexity: O(m·n·r) time, O(m·n) extra space.
func divergenceUpdate(V mat.Matrix, W, H *mat.Dense) {
	var wh, q, num mat.Dense

	// H step.
	wh.Mul(W, H)
	quotient(&q, V, &wh)
	num.Mul(W.T(), &q)
	div := colSums(W) // div[k] scales row k of H
	hraw := H.RawMatrix()
	nraw := num.RawMatrix()
	for k := 0; k < hraw.Rows; k++ {
		hrow := hraw.Data[k*hraw.Stride : k*hraw.Stride+hraw.Cols]
		nrow := nraw.Data[k*nraw.Stride : k*nraw.Stride+nraw.Cols]
		for j := range hrow {
			hrow[j] = capped(hrow[j] * nrow[j] / div[k])
		}
	}

	// W step, against the new H.
	wh.Reset()
	q.Reset()
	num.Reset()
	wh.Mul(W, H)
	quotient(&q, V, &wh)
	num.Mul(&q, H.T())
	div = rowSums(H) // div[k] scales column k of W
	wraw := W.RawMatrix()
	nraw = num.RawMatrix()
	for i := 0; i < wraw.Rows; i++ {
		wrow := wraw.Data[i*wraw.Stride : i*wraw.Stride+wraw.Cols]
		nrow := nraw.Data[i*nraw.Stride : i*nraw.Stride+nraw.Cols]
		for k := range wrow {
			wrow[k] = capped(wrow[k] * nrow[k] / div[k])
		}
	}
}

// mulQuotient performs dst ← dst ⊙ (num ⊘ den) in place, clamping
// non-finite results. All three matrices share one shape.
func mulQuotient(dst, num, den *mat.Dense) {
	draw := dst.RawMatrix()
	nraw := num.RawMatrix()
	eraw := den.RawMatrix()
	for i := 0; i < draw.Rows; i++ {
		drow := draw.Data[i*draw.Stride : i*draw.Stride+draw.Cols]
		nrow := nraw.Data[i*nraw.Stride : i*nraw.Stride+nraw.Cols]
		erow := eraw.Data[i*eraw.Stride : i*eraw.Stride+eraw.Cols]
		for j := range drow {
			drow[j] = capped(drow[j] * nrow[j] / erow[j])
		}
	}
}

// quotient computes dst ← num ⊘ den with non-finite entries clamped.
func quotient(dst *mat.Dense, num mat.Matrix, den *mat.Dense) {
	dst.DivElem(num, den)
	raw := dst.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			row[j] = capped(v)
		}
	}
}

// capped maps NaN and ±Inf to the finite sentinel.
func capped(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return quotientCap
	}

	return v
}

// colSums returns the per-column sums of a (length = number of columns).
func colSums(a *mat.Dense) []float64 {
	raw := a.RawMatrix()
	sums := make([]float64, raw.Cols)
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			sums[j] += v
		}
	}

	return sums
}

// rowSums returns the per-row sums of a (length = number of rows).
func rowSums(a *mat.Dense) []float64 {
	raw := a.RawMatrix()
	sums := make([]float64, raw.Rows)
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for _, v := range row {
			sums[i] += v
		}
	}

	return sums
}
