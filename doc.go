// Package lvlnmf is an in-memory toolkit for Nonnegative Matrix
// Factorization (NMF): given a nonnegative target matrix V (m×n) it finds
// nonnegative factors W (m×r) and H (r×n), r ≪ min(m,n), so that W·H
// approximates V under a chosen divergence.
//
// 🚀 What is lvlnmf?
//
//	A small, deterministic library built on gonum dense matrices:
//		• Multiplicative updates: Euclidean (Lee–Seung) and KL-divergence
//		• Objectives: squared Frobenius, generalized KL, connectivity change
//		• Multi-run restarts with per-run callbacks and history tracking
//		• Pluggable seeding: random, fixed, NNDSVD, random_c, random_vcol
//
// ✨ Why choose lvlnmf?
//
//   - Beginner-friendly – one entry point, plain Options struct
//   - Deterministic – seeded RNG everywhere, no time-based randomness
//   - Numerically careful – epsilon floors and guarded quotients keep
//     every run finite and every stopping comparison well-defined
//
// Everything is organized under three subpackages:
//
//	nmf/   — the factorization engine: updates, objectives, stopping, runs
//	seed/  — initial (W, H) strategies implementing nmf.Seeder
//	track/ — in-memory run history implementing nmf.Tracker
//
// Quick sketch:
//
//	V (m×n)  ≈  W (m×r) · H (r×n),   all entries ≥ 0
//
// See examples/ for runnable scenarios and each package's example_test.go
// for focused usage.
//
//	go get github.com/katalvlaran/lvlnmf
package lvlnmf
