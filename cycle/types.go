// Package cycle implements the cycle oracles: given a weighted DALM —
// per-node weights are the current LP operator counts aggregated per
// landmark — find a simple cycle whose total node weight is strictly
// below 1, i.e. a violated disjunctive-action-landmark cycle
// constraint. Two strategies are provided, Floyd-Warshall-based and
// depth-first.
package cycle

import "github.com/cyclicplan/lmheuristic/dalm"

// epsilon is the numerical tolerance used when comparing accumulated
// cycle weight against the 1.0 threshold; distinct from the heuristic
// driver's objective-rounding epsilon.
const epsilon = 1e-9

// Oracle finds a single violated cycle in a weighted DALM, or reports
// none exists. Returned cycles are the open node sequence [v0, v1, ...,
// v_{k-1}] with the closing edge v_{k-1} -> v0 implied; no uniqueness is
// required among multiple violated cycles.
//
// When ignoreWeak is true, weak DALM edges are treated as absent
// (strong mode).
type Oracle interface {
	FindCycle(g *dalm.Graph, weights []float64, ignoreWeak bool) ([]int, error)
}
