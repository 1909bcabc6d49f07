package nmf

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the unexported stopping evaluator, update kernels, objective
//     functions and connectivity state to nmf_test ONLY, so properties can
//     be verified against controlled value sequences without widening the
//     prod API.
//
// Provided Surface:
//   - Exported* aliases: thin pass-through to private functions.
//   - ExportedNewConnState / ExportedConnUpdate: connectivity state bridge.

var (
	// ExportedShouldContinue exposes shouldContinue for white-box tests.
	ExportedShouldContinue = shouldContinue

	// ExportedApplyUpdate exposes applyUpdate for white-box tests.
	ExportedApplyUpdate = applyUpdate

	// ExportedStabilize exposes stabilize for white-box tests.
	ExportedStabilize = stabilize

	// ExportedFroObjective / ExportedDivObjective expose the distance
	// objectives for white-box tests.
	ExportedFroObjective = froObjective
	ExportedDivObjective = divObjective

	// ExportedNewConnState and ExportedConnUpdate expose the connectivity
	// objective's explicit per-run state.
	ExportedNewConnState = newConnState
	ExportedConnUpdate   = (*connState).update
)

// ExportedMachEps mirrors the stabilizer floor for assertions.
const ExportedMachEps = machEps
