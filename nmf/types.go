package nmf

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrUnknownUpdate is returned when an update-rule name or value is not
// one of the recognized variants (euclidean, divergence).
var ErrUnknownUpdate = errors.New("nmf: unknown update rule")

// ErrUnknownObjective is returned when an objective name or value is not
// one of the recognized variants (fro, div, conn).
var ErrUnknownObjective = errors.New("nmf: unknown objective function")

// ErrNilMatrix indicates a nil target matrix V.
var ErrNilMatrix = errors.New("nmf: nil target matrix")

// ErrNegativeInput indicates a negative entry in the target matrix V.
// NMF is defined for nonnegative targets only.
var ErrNegativeInput = errors.New("nmf: target matrix has negative entries")

// ErrBadRank indicates a rank outside [1, min(m, n)].
var ErrBadRank = errors.New("nmf: rank out of range")

// ErrBadOptions indicates an internally inconsistent Options value
// (NRun < 1, or a negative iteration/residual/test-interval limit).
var ErrBadOptions = errors.New("nmf: invalid options")

// ErrNoSeeder indicates that no seeding strategy was configured.
// There is no implicit default; callers must supply Options.Seeder.
var ErrNoSeeder = errors.New("nmf: no seeder configured")

// ErrDimensionMismatch indicates that a seeder returned factors whose
// shapes do not match the target matrix and the requested rank.
var ErrDimensionMismatch = errors.New("nmf: factor dimension mismatch")

// UpdateRule selects the multiplicative update family applied to (W, H)
// each iteration. The set is closed; dispatch is a switch, not a name
// lookup. Use ParseUpdateRule to map the conventional string names.
type UpdateRule int

const (
	// Euclidean is the classic Lee–Seung multiplicative update minimizing
	// squared Frobenius distance. Default.
	Euclidean UpdateRule = iota

	// Divergence is the multiplicative update minimizing generalized
	// Kullback–Leibler divergence.
	Divergence
)

// String returns the conventional lowercase name of the rule.
func (u UpdateRule) String() string {
	switch u {
	case Euclidean:
		return "euclidean"
	case Divergence:
		return "divergence"
	default:
		return "unknown"
	}
}

// ParseUpdateRule maps the conventional names "euclidean" and "divergence"
// to their UpdateRule values. Unrecognized names yield ErrUnknownUpdate.
func ParseUpdateRule(name string) (UpdateRule, error) {
	switch name {
	case "euclidean":
		return Euclidean, nil
	case "divergence":
		return Divergence, nil
	default:
		return 0, ErrUnknownUpdate
	}
}

// Objective selects the per-iteration cost measure consulted by the
// stopping evaluator. Frobenius and KLDivergence are distance measures;
// Connectivity is a cluster-stability measure (see objective.go).
type Objective int

const (
	// Frobenius is the squared Frobenius norm of V − W·H ("fro"). Default.
	Frobenius Objective = iota

	// KLDivergence is the generalized Kullback–Leibler divergence of V
	// from W·H ("div").
	KLDivergence

	// Connectivity counts changed entries between successive co-clustering
	// matrices of H ("conn"); zero change means stable cluster assignments.
	Connectivity
)

// String returns the conventional short name of the objective.
func (o Objective) String() string {
	switch o {
	case Frobenius:
		return "fro"
	case KLDivergence:
		return "div"
	case Connectivity:
		return "conn"
	default:
		return "unknown"
	}
}

// ParseObjective maps the conventional names "fro", "div" and "conn" to
// their Objective values. Unrecognized names yield ErrUnknownObjective.
func ParseObjective(name string) (Objective, error) {
	switch name {
	case "fro":
		return Frobenius, nil
	case "div":
		return KLDivergence, nil
	case "conn":
		return Connectivity, nil
	default:
		return 0, ErrUnknownObjective
	}
}

// Seeder produces an initial factor pair for one run.
//
// Contracts:
//   - W is m×rank and H is rank×n for an m×n target V.
//   - All entries are nonnegative.
//   - Each call may return a fresh pair; the engine mutates the returned
//     matrices in place and never hands them back.
//
// Implementations live in the seed package; any type with this method
// satisfies the contract.
type Seeder interface {
	Initialize(V mat.Matrix, rank int) (W, H *mat.Dense, err error)
}

// Tracker receives run history from the engine. It owns its storage and
// is never read back. TrackFactor receives deep copies; TrackError
// receives the objective value current after each iteration.
type Tracker interface {
	TrackError(run int, residual float64)
	TrackFactor(run int, W, H *mat.Dense)
}

// Fit is the outcome of one factorization run (and, for Factorize, of the
// whole call): the fitted factors, the final objective value, and the
// number of update iterations actually performed.
type Fit struct {
	// W is the fitted m×rank basis matrix.
	W *mat.Dense

	// H is the fitted rank×n mixture matrix.
	H *mat.Dense

	// Objective is the final objective value of the run.
	Objective float64

	// Iterations is the number of update steps performed.
	Iterations int

	// Run is the zero-based index of the run that produced this fit.
	Run int
}

// Estimate returns the NMF estimate W·H as a fresh matrix.
func (f Fit) Estimate() *mat.Dense {
	var est mat.Dense
	est.Mul(f.W, f.H)

	return &est
}
