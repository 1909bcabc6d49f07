package nmf

import "gonum.org/v1/gonum/mat"

// machEps is the float64 machine epsilon (2⁻⁵²). Every factor entry is
// floored at machEps after each update so that subsequent elementwise
// divisions and logarithms stay singularity-free.
const machEps = 2.220446049250313e-16

// stabilize floors every entry of a in place at machEps. It must run on
// both factors after every update step and before the next objective
// recomputation.
//
// Complexity: O(rows·cols) time, O(1) space.
func stabilize(a *mat.Dense) {
	raw := a.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			if v < machEps {
				row[j] = machEps
			}
		}
	}
}
