// Package johnson implements Johnson's algorithm for enumerating every
// elementary (simple) directed cycle of a DALM. It is used by the
// "enumerate all cycles once" constraint-generation mode as an
// alternative to the implicit-hitting-set oracle loop (package cycle).
//
// Unlike the oracle-based search, this carries no weight filter: the
// caller adds one LP constraint per cycle returned, regardless of
// whether that cycle happens to be satisfied by the current solution.
package johnson

import "github.com/cyclicplan/lmheuristic/dalm"

// EnumerateCycles returns every elementary directed cycle of g, each as
// the open node sequence [v0, v1, ..., v_{k-1}] (closing edge v_{k-1} ->
// v0 implied), in deterministic order: adjacency lists are sorted
// ascending before the search runs, and cycles are emitted in increasing
// order of their lowest-indexed vertex, then DFS discovery order.
//
// This is the textbook circuit-finding recursion (Johnson, 1975) without
// the strongly-connected-component pruning step: it returns the same
// exhaustive, duplicate-free cycle set, just without skipping whole
// SCC-free regions of the search early. DALM graphs are bounded by the
// number of distinct achiever sets, small enough that the SCC pre-pass
// does not pay for itself.
//
// Complexity: O((V + E)(C + V)) time where C is the number of elementary
// cycles — without the SCC step every root vertex walks its reachable
// subgraph even when no cycle passes through it; O(V + E) space for the
// blocked-set bookkeeping.
func EnumerateCycles(g *dalm.Graph) [][]int {
	adj := g.AdjacencyKeysOnly()
	e := &enumerator{adj: adj, blocked: make([]bool, len(adj)), blockedBy: make([][]int, len(adj))}

	var all [][]int
	for s := 0; s < len(adj); s++ {
		for i := range e.blocked {
			e.blocked[i] = false
			e.blockedBy[i] = nil
		}
		e.least = s
		e.stack = e.stack[:0]
		e.found = nil
		e.circuit(s)
		all = append(all, e.found...)
	}

	return all
}

// enumerator holds the recursion state for one root vertex's search.
type enumerator struct {
	adj       [][]int // sorted adjacency lists, shared across roots
	least     int     // current root vertex; neighbors < least are outside the induced subgraph
	blocked   []bool
	blockedBy [][]int // B[u]: vertices to unblock once u unblocks
	stack     []int
	found     [][]int
}

// circuit performs the Johnson circuit-finding recursion from v, closing
// any cycle that returns to least. Returns whether any cycle was found
// through v (which decides whether v unblocks immediately or instead
// joins its neighbors' blocked-by sets).
func (e *enumerator) circuit(v int) bool {
	foundAny := false
	e.stack = append(e.stack, v)
	e.blocked[v] = true

	for _, w := range e.adj[v] {
		if w < e.least {
			continue
		}
		if w == e.least {
			cyc := make([]int, len(e.stack))
			copy(cyc, e.stack)
			e.found = append(e.found, cyc)
			foundAny = true
		} else if !e.blocked[w] {
			if e.circuit(w) {
				foundAny = true
			}
		}
	}

	if foundAny {
		e.unblock(v)
	} else {
		for _, w := range e.adj[v] {
			if w < e.least {
				continue
			}
			if !containsInt(e.blockedBy[w], v) {
				e.blockedBy[w] = append(e.blockedBy[w], v)
			}
		}
	}

	e.stack = e.stack[:len(e.stack)-1]

	return foundAny
}

// unblock clears v's blocked flag and recursively unblocks every vertex
// that was waiting on it.
func (e *enumerator) unblock(v int) {
	e.blocked[v] = false
	waiting := e.blockedBy[v]
	e.blockedBy[v] = nil
	for _, w := range waiting {
		if e.blocked[w] {
			e.unblock(w)
		}
	}
}

func containsInt(s []int, x int) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}

	return false
}
