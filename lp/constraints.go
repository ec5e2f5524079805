package lp

import "github.com/cyclicplan/lmheuristic/dalm"

// BuildBaseConstraints returns one constraint per DALM node:
// Σ_{o ∈ actions(u)} x_o ≥ 1. Variable indices are operator ids,
// matching the Variables slice the caller passes to Solver.LoadProblem.
func BuildBaseConstraints(g *dalm.Graph) []Constraint {
	n := g.NumLandmarks()
	out := make([]Constraint, n)
	for u := 0; u < n; u++ {
		c := NewConstraint(1)
		for _, o := range g.Actions(u) {
			c.Add(o, 1)
		}
		out[u] = c
	}

	return out
}

// BuildCycleConstraint builds the temporary constraint for cycle C =
// v0, ..., v_{k-1}: over the eligible edges of C, the achiever sums of
// the edge targets must total at least one more than the number of
// eligible edges. strong selects whether only strong DALM edges count
// as eligible breakpoints (true) or every edge in the cycle does
// (false).
//
// ok is false when the cycle has zero eligible edges (every edge in C
// is weak and strong is true) — such a cycle contributes no constraint
// at all, rather than an unsatisfiable one.
//
// Whether the resulting bound stays admissible with strong == false
// across all edge kinds is an open question; callers default strong to
// true.
func BuildCycleConstraint(g *dalm.Graph, cycle []int, strong bool) (c Constraint, ok bool) {
	k := len(cycle)
	if k == 0 {
		return Constraint{}, false
	}

	m := 0
	coeffs := make(map[int]float64)
	for i := 0; i < k; i++ {
		u := cycle[i]
		v := cycle[(i+1)%k]
		kind, exists := g.OrderingType(u, v)
		if !exists {
			continue
		}
		if strong && kind != dalm.Strong {
			continue
		}
		m++
		for _, o := range g.Actions(v) {
			coeffs[o]++
		}
	}
	if m == 0 {
		return Constraint{}, false
	}

	return Constraint{Coeffs: coeffs, RHS: float64(m + 1)}, true
}

// BuildAllCycleConstraints builds one constraint per cycle in cycles,
// dropping those that turn out to have zero eligible edges. Used by the
// enumerate-once (Johnson) generation mode.
func BuildAllCycleConstraints(g *dalm.Graph, cycles [][]int, strong bool) []Constraint {
	out := make([]Constraint, 0, len(cycles))
	for _, cyc := range cycles {
		if c, ok := BuildCycleConstraint(g, cyc, strong); ok {
			out = append(out, c)
		}
	}

	return out
}

// LandmarkWeights computes, for every DALM node, the sum of the current
// solution's values over that node's achiever operators — the "weights"
// input a cycle oracle needs. solution is indexed by
// operator id, as returned by Solver.ExtractSolution.
func LandmarkWeights(g *dalm.Graph, solution []float64) []float64 {
	n := g.NumLandmarks()
	w := make([]float64, n)
	for u := 0; u < n; u++ {
		var sum float64
		for _, o := range g.Actions(u) {
			sum += solution[o]
		}
		w[u] = sum
	}

	return w
}
