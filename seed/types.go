package seed

import "errors"

// ErrNilMatrix indicates a nil or empty target matrix.
var ErrNilMatrix = errors.New("seed: nil target matrix")

// ErrBadRank indicates a rank outside [1, min(m, n)].
var ErrBadRank = errors.New("seed: rank out of range")

// ErrNilFactors indicates that Fixed was constructed without both factors.
var ErrNilFactors = errors.New("seed: fixed factors are nil")

// ErrShapeMismatch indicates that supplied factors do not match the
// target's shape and the requested rank.
var ErrShapeMismatch = errors.New("seed: factor shape mismatch")

// ErrSVDFailed indicates that the SVD underlying NNDSVD did not converge.
var ErrSVDFailed = errors.New("seed: svd factorization failed")
