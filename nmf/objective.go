// Package nmf - objective functions consulted by the stopping evaluator.
//
// Frobenius and KLDivergence are distance measures between V and W·H;
// Connectivity is a cluster-stability measure that counts how many
// co-clustering relations changed since the previous evaluation. The
// connectivity state is explicit per-run state (connState), never hidden
// engine fields, so the other objectives stay pure functions.
package nmf

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// evalObjective computes the configured objective for the current
// factors. st carries the connectivity state and is only consulted by
// the Connectivity objective.
func evalObjective(obj Objective, V mat.Matrix, W, H *mat.Dense, st *connState) float64 {
	switch obj {
	case KLDivergence:
		return divObjective(V, W, H)
	case Connectivity:
		return st.update(H)
	default:
		return froObjective(V, W, H)
	}
}

// froObjective returns Σ (V − W·H)² over all entries: the squared
// Frobenius norm of the residual. Monotone non-increasing under the
// Euclidean update.
//
// Complexity: O(m·n·r) time (dominated by the W·H product).
func froObjective(V mat.Matrix, W, H *mat.Dense) float64 {
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

// divObjective returns Σ [ V ⊙ log(V ⊘ W·H) − V + W·H ]: the generalized
// Kullback–Leibler divergence of V from its estimate. Monotone
// non-increasing under the Divergence update.
//
// Entries with V == 0 contribute only the estimate term (x·log x → 0 as
// x → 0); the estimate itself is floored at machEps to guard the log.
//
// Complexity: O(m·n·r) time.
func divObjective(V mat.Matrix, W, H *mat.Dense) float64 {
	var wh mat.Dense
	wh.Mul(W, H)

	m, n := V.Dims()
	var sum float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			est := wh.At(i, j)
			if est < machEps {
				est = machEps
			}
			v := V.At(i, j)
			if v > 0 {
				sum += v*math.Log(v/est) - v + est
			} else {
				sum += est
			}
		}
	}

	return sum
}

// connState holds one run's connectivity history: the co-clustering
// matrix from the previous evaluation, flattened row-major over n×n.
// A fresh (unprimed) state compares the first connectivity matrix
// against its logical complement, forcing a full change count (n²) on
// iteration 0 so the run never terminates before a single update.
type connState struct {
	n      int
	cons   []bool
	primed bool
}

func newConnState(n int) *connState {
	return &connState{n: n}
}

// update recomputes the connectivity matrix of H and returns the number
// of entries that changed since the previous evaluation.
//
// cons[i][j] is true when columns i and j of H share the same dominant
// basis component (equal argmax row index).
//
// Complexity: O(r·n + n²) time, O(n²) space.
func (st *connState) update(H *mat.Dense) float64 {
	r, n := H.Dims()

	// Dominant component per sample column.
	idx := make([]int, n)
	for j := 0; j < n; j++ {
		best := 0
		for i := 1; i < r; i++ {
			if H.At(i, j) > H.At(best, j) {
				best = i
			}
		}
		idx[j] = best
	}

	next := make([]bool, n*n)
	changed := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c := idx[i] == idx[j]
			next[i*n+j] = c

			// Unprimed state compares against the complement: every
			// entry counts as changed.
			if !st.primed {
				changed++
				continue
			}
			if c != st.cons[i*n+j] {
				changed++
			}
		}
	}

	st.cons = next
	st.primed = true

	return float64(changed)
}
