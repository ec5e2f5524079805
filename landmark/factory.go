package landmark

import "github.com/cyclicplan/lmheuristic/collab"

// Factory is the fact-landmark factory collaborator: an external
// component (out of scope for this core) that produces the initial FG
// from a task, and can recompute FG with a different initial state.
// Implementations must memoize per task. A second, differing task never
// reaches the factory: heuristic.ConstraintHandler.Initialize rejects it
// with heuristic.ErrTaskMismatch.
type Factory interface {
	// ComputeLMGraph builds (or returns the memoized) FG for task.
	ComputeLMGraph(task collab.Task) (*Graph, error)

	// RecomputeLMGraph builds a fresh FG for a task identical to the one
	// last passed to ComputeLMGraph except with state substituted as the
	// initial state. Recomputes unconditionally; results are not
	// memoized across calls with identical substituted states.
	RecomputeLMGraph(state collab.State) (*Graph, error)

	// ComputesReasonableOrders reports whether this factory populates
	// REASONABLE/OBEDIENT_REASONABLE edges itself.
	ComputesReasonableOrders() bool

	// SupportsConditionalEffects reports whether the factory can handle
	// tasks with conditional effects. This core requires false.
	SupportsConditionalEffects() bool
}
