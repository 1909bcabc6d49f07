package seed_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlnmf/nmf"
	"github.com/katalvlaran/lvlnmf/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Every strategy must satisfy the engine's Seeder contract.
var (
	_ nmf.Seeder = (*seed.Random)(nil)
	_ nmf.Seeder = seed.Fixed{}
	_ nmf.Seeder = (*seed.NNDSVD)(nil)
	_ nmf.Seeder = (*seed.RandomC)(nil)
	_ nmf.Seeder = (*seed.RandomVCol)(nil)
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

// minEntry returns the smallest entry of a.
func minEntry(a *mat.Dense) float64 {
	lowest := a.At(0, 0)
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v < lowest {
				lowest = v
			}
		}
	}

	return lowest
}

// freshStrategies returns one instance of every strategy, built anew per
// call so RNG streams start from their seed.
func freshStrategies() map[string]nmf.Seeder {
	fw := mat.NewDense(7, 3, nil)
	fh := mat.NewDense(3, 5, nil)
	for i := 0; i < 7*3; i++ {
		fw.Set(i/3, i%3, float64(i+1))
	}
	for i := 0; i < 3*5; i++ {
		fh.Set(i/5, i%5, float64(i+1))
	}

	return map[string]nmf.Seeder{
		"random":         &seed.Random{Seed: 5},
		"fixed":          seed.Fixed{W: fw, H: fh},
		"nndsvd":         &seed.NNDSVD{},
		"nndsvda":        &seed.NNDSVD{Variant: seed.Average},
		"nndsvdar":       &seed.NNDSVD{Variant: seed.AverageRandom, Seed: 5},
		"random_c":       &seed.RandomC{Seed: 5},
		"random_vcol":    &seed.RandomVCol{Seed: 5},
		"random_c_tuned": &seed.RandomC{Seed: 5, PCol: 2, LCol: 3},
	}
}

// TestStrategies_ShapesAndNonnegativity: every strategy must return an
// m×rank / rank×n pair with no negative entries.
func TestStrategies_ShapesAndNonnegativity(t *testing.T) {
	V := randomTarget(7, 5, 101)

	for name, s := range freshStrategies() {
		t.Run(name, func(t *testing.T) {
			W, H, err := s.Initialize(V, 3)
			require.NoError(t, err)

			wr, wc := W.Dims()
			hr, hc := H.Dims()
			assert.Equal(t, [2]int{7, 3}, [2]int{wr, wc}, "W shape")
			assert.Equal(t, [2]int{3, 5}, [2]int{hr, hc}, "H shape")
			assert.GreaterOrEqual(t, minEntry(W), 0.0, "W must be nonnegative")
			assert.GreaterOrEqual(t, minEntry(H), 0.0, "H must be nonnegative")
		})
	}
}

// TestStrategies_RejectBadTargets: shared validation sentinels apply to
// every strategy.
func TestStrategies_RejectBadTargets(t *testing.T) {
	V := randomTarget(7, 5, 101)

	for name, s := range freshStrategies() {
		t.Run(name, func(t *testing.T) {
			_, _, err := s.Initialize(nil, 3)
			assert.ErrorIs(t, err, seed.ErrNilMatrix, "nil target")

			_, _, err = s.Initialize(V, 0)
			assert.ErrorIs(t, err, seed.ErrBadRank, "rank below 1")

			_, _, err = s.Initialize(V, 6)
			assert.ErrorIs(t, err, seed.ErrBadRank, "rank above min(m,n)")
		})
	}
}

// TestRandom_DeterministicAcrossInstances: fresh instances with the same
// seed reproduce the same factors; one instance's stream advances between
// calls so consecutive runs differ.
func TestRandom_DeterministicAcrossInstances(t *testing.T) {
	V := randomTarget(6, 4, 9)

	a := &seed.Random{Seed: 5}
	b := &seed.Random{Seed: 5}
	wa, ha, err := a.Initialize(V, 2)
	require.NoError(t, err)
	wb, hb, err := b.Initialize(V, 2)
	require.NoError(t, err)

	assert.True(t, mat.Equal(wa, wb), "equal seeds must reproduce W")
	assert.True(t, mat.Equal(ha, hb), "equal seeds must reproduce H")

	wa2, _, err := a.Initialize(V, 2)
	require.NoError(t, err)
	assert.False(t, mat.Equal(wa, wa2), "a second call must advance the stream")
}

// TestRandom_EntriesWithinScale: uniform entries live in (0, max(V)].
func TestRandom_EntriesWithinScale(t *testing.T) {
	V := randomTarget(6, 4, 10)
	vmax := mat.Max(V)

	W, H, err := (&seed.Random{Seed: 1}).Initialize(V, 2)
	require.NoError(t, err)

	assert.Greater(t, minEntry(W), 0.0, "entries are strictly positive")
	assert.LessOrEqual(t, mat.Max(W), vmax, "entries never exceed max(V)")
	assert.Greater(t, minEntry(H), 0.0)
	assert.LessOrEqual(t, mat.Max(H), vmax)
}

// TestFixed_CopiesAndValidation: Fixed hands out isolated copies and
// rejects missing or misshapen factors.
func TestFixed_CopiesAndValidation(t *testing.T) {
	V := randomTarget(4, 3, 11)
	W0 := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	H0 := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	s := seed.Fixed{W: W0, H: H0}
	W, H, err := s.Initialize(V, 2)
	require.NoError(t, err)
	require.True(t, mat.Equal(W0, W))
	require.True(t, mat.Equal(H0, H))

	W.Set(0, 0, 99)
	assert.Equal(t, 1.0, W0.At(0, 0), "mutating the copy must not touch the original")

	_, _, err = seed.Fixed{W: W0}.Initialize(V, 2)
	assert.ErrorIs(t, err, seed.ErrNilFactors, "missing H")

	_, _, err = seed.Fixed{W: H0, H: W0}.Initialize(V, 2)
	assert.ErrorIs(t, err, seed.ErrShapeMismatch, "swapped shapes")
}

// TestNNDSVD_VariantsFillZeros: the Plain variant may leave zeros behind;
// Average and AverageRandom must not.
func TestNNDSVD_VariantsFillZeros(t *testing.T) {
	V := randomTarget(8, 6, 13)

	for _, variant := range []seed.NNDSVDVariant{seed.Average, seed.AverageRandom} {
		s := &seed.NNDSVD{Variant: variant, Seed: 3}
		W, H, err := s.Initialize(V, 3)
		require.NoError(t, err)

		assert.Greater(t, minEntry(W), 0.0, "variant %d must fill W zeros", variant)
		assert.Greater(t, minEntry(H), 0.0, "variant %d must fill H zeros", variant)
	}
}

// TestNNDSVD_Deterministic: Plain is a pure function of the target, and
// AverageRandom reproduces under equal seeds.
func TestNNDSVD_Deterministic(t *testing.T) {
	V := randomTarget(8, 6, 14)

	w1, h1, err := (&seed.NNDSVD{}).Initialize(V, 3)
	require.NoError(t, err)
	w2, h2, err := (&seed.NNDSVD{}).Initialize(V, 3)
	require.NoError(t, err)
	assert.True(t, mat.Equal(w1, w2), "plain variant is deterministic")
	assert.True(t, mat.Equal(h1, h2))

	w1, _, err = (&seed.NNDSVD{Variant: seed.AverageRandom, Seed: 8}).Initialize(V, 3)
	require.NoError(t, err)
	w2, _, err = (&seed.NNDSVD{Variant: seed.AverageRandom, Seed: 8}).Initialize(V, 3)
	require.NoError(t, err)
	assert.True(t, mat.Equal(w1, w2), "equal seeds must reproduce the noise")
}

// TestRandomVCol_ColumnsStayInDataRange: averages of target columns and
// rows can never exceed the target's maximum entry.
func TestRandomVCol_ColumnsStayInDataRange(t *testing.T) {
	V := randomTarget(10, 8, 15)
	vmax := mat.Max(V)

	W, H, err := (&seed.RandomVCol{Seed: 2}).Initialize(V, 3)
	require.NoError(t, err)

	assert.LessOrEqual(t, mat.Max(W), vmax, "W is a mean of V columns")
	assert.LessOrEqual(t, mat.Max(H), vmax, "H is a mean of V rows")
}

// TestRandomC_Deterministic: equal seeds reproduce; the dense-column pool
// keeps W inside the target's range.
func TestRandomC_Deterministic(t *testing.T) {
	V := randomTarget(10, 8, 16)

	w1, h1, err := (&seed.RandomC{Seed: 4}).Initialize(V, 3)
	require.NoError(t, err)
	w2, h2, err := (&seed.RandomC{Seed: 4}).Initialize(V, 3)
	require.NoError(t, err)

	assert.True(t, mat.Equal(w1, w2), "equal seeds must reproduce W")
	assert.True(t, mat.Equal(h1, h2), "equal seeds must reproduce H")
	assert.LessOrEqual(t, mat.Max(w1), mat.Max(V), "W is a mean of V columns")
}
