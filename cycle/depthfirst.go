package cycle

import "github.com/cyclicplan/lmheuristic/dalm"

// DepthFirstOracle finds a violated cycle via DFS with an accumulated
// weight carried on the recursion stack. The usual three-color back-edge
// bookkeeping collapses to plain stack membership here: a node is either
// on the current DFS stack or it isn't — no third, fully-explored state
// is needed, since the search stops at the first violated cycle found.
//
// A branch is pruned the moment its accumulated weight reaches or
// exceeds 1: no extension of it can ever close under the threshold.
//
// Complexity: O(V + E) amortized in the common case; worst case
// exponential in pathological weight distributions, as for any
// exhaustive simple-cycle search.
type DepthFirstOracle struct{}

// FindCycle implements Oracle.
func (DepthFirstOracle) FindCycle(g *dalm.Graph, weights []float64, ignoreWeak bool) ([]int, error) {
	n := g.NumLandmarks()
	onStack := make([]bool, n)
	var stack []int
	var found []int

	var visit func(u, start int, total float64) bool
	visit = func(u, start int, total float64) bool {
		for _, e := range g.Children(u) {
			if ignoreWeak && e.Kind == dalm.Weak {
				continue
			}
			if e.To == start {
				if total < 1-epsilon {
					found = append([]int(nil), stack...)

					return true
				}

				continue
			}
			if onStack[e.To] {
				continue
			}
			nt := total + weights[e.To]
			if nt >= 1 {
				continue // pruned: cannot close under the threshold from here
			}
			onStack[e.To] = true
			stack = append(stack, e.To)
			if visit(e.To, start, nt) {
				return true
			}
			stack = stack[:len(stack)-1]
			onStack[e.To] = false
		}

		return false
	}

	for start := 0; start < n; start++ {
		onStack[start] = true
		stack = []int{start}
		if visit(start, start, weights[start]) {
			return found, nil
		}
		onStack[start] = false
	}

	return nil, nil
}
