// Package track records NMF run history: per-iteration residual traces
// and per-run factor snapshots.
//
// History implements the engine's Tracker contract. It owns its storage;
// the engine only appends and never reads back, so inspection after a
// Factorize call is race-free by construction (the engine is sequential
// and synchronous).
//
// ⚙️ Usage:
//
//	hist := track.NewHistory()
//	opts.Tracker = hist
//	opts.TrackError = true
//
//	_, err := nmf.Factorize(V, rank, &opts)
//	trace := hist.Residuals(0) // objective value after each iteration
package track
