package nmf_test

import (
	"testing"

	"github.com/katalvlaran/lvlnmf/nmf"
	"github.com/katalvlaran/lvlnmf/seed"
)

// benchFactorize runs a fixed 20×15 rank-3 factorization with the given
// update/objective pairing.
func benchFactorize(b *testing.B, update nmf.UpdateRule, objective nmf.Objective) {
	b.Helper()

	V := randomTarget(20, 15, 77)
	opts := nmf.DefaultOptions()
	opts.Update = update
	opts.Objective = objective
	opts.MaxIter = 20
	opts.Seeder = &seed.Random{Seed: 77}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nmf.Factorize(V, 3, &opts); err != nil {
			b.Fatalf("Factorize: %v", err)
		}
	}
}

func BenchmarkFactorize_Euclidean(b *testing.B) {
	benchFactorize(b, nmf.Euclidean, nmf.Frobenius)
}

func BenchmarkFactorize_Divergence(b *testing.B) {
	benchFactorize(b, nmf.Divergence, nmf.KLDivergence)
}
