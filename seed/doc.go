// Package seed provides initial (W, H) strategies for NMF runs.
//
// Every strategy satisfies the engine's Seeder contract: given an m×n
// target V and a rank r it returns a nonnegative m×r basis matrix W and
// a nonnegative r×n mixture matrix H.  How good the seed is decides how
// few multiplicative updates a run needs — and, for non-convex NMF,
// which local minimum it lands in.
//
// ✨ Strategies:
//   - Random      — entries uniform in (0, max(V)]; the classic baseline
//   - Fixed       — caller-supplied factors, copied per run
//   - NNDSVD      — SVD-based, deterministic, fast-converging
//     (plain / zero-filling "a" and "ar" variants)
//   - RandomC     — W columns averaged from the densest columns of V
//   - RandomVCol  — W columns / H rows averaged from random V columns/rows
//
// There is no "none" strategy here: an engine Options without a Seeder is
// a configuration error (nmf.ErrNoSeeder).
//
// Determinism:
//
//	All randomized strategies draw from a seeded RNG (seed==0 selects a
//	fixed default seed), so a given seed reproduces the same factor
//	sequence across platforms.  A single strategy value advances its RNG
//	stream call by call: consecutive runs of a multi-run factorization
//	receive distinct seeds, while two fresh values with the same Seed
//	reproduce each other exactly.
package seed
