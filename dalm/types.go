// Package dalm implements the disjunctive action landmark graph (DG): a
// directed graph whose nodes are disjunctive action landmarks (sets of
// operator ids of which at least one must be executed) and whose edges
// are orderings — strong or weak — derived from a fact-landmark graph.
//
// Like landmark.Graph, DG is an arena keyed by dense integer ids; nodes
// are deduplicated by their canonical (sorted, unique) achiever set so
// that two fact landmarks sharing an achiever set collapse to one node.
package dalm

import (
	"sort"
	"strconv"
	"strings"
)

// OrderingKind is a DALM ordering edge kind.
type OrderingKind int

const (
	// Strong orderings come from fact-landmark edges of kind >= NATURAL.
	Strong OrderingKind = iota
	// Weak orderings come from REASONABLE fact-landmark edges whose
	// endpoints share no common achiever.
	Weak
)

// String renders an OrderingKind for diagnostics.
func (k OrderingKind) String() string {
	if k == Strong {
		return "strong"
	}

	return "weak"
}

// Edge is a DALM ordering edge u -> v.
type Edge struct {
	From int
	To   int
	Kind OrderingKind
}

// Graph is the disjunctive action landmark graph (DG).
type Graph struct {
	actions  [][]int // node id -> canonical achiever set
	index    map[string]int
	children map[int][]Edge

	numOrderings     int
	numWeakOrderings int
}

// NewGraph returns an empty DG arena.
func NewGraph() *Graph {
	return &Graph{
		index:    make(map[string]int),
		children: make(map[int][]Edge),
	}
}

// canonicalKey computes the sorted, deduplicated achiever set and its
// string signature, used both as the node's stored Actions and as the
// deduplication key.
func canonicalKey(actionIDs []int) ([]int, string) {
	seen := make(map[int]struct{}, len(actionIDs))
	for _, a := range actionIDs {
		seen[a] = struct{}{}
	}
	canon := make([]int, 0, len(seen))
	for a := range seen {
		canon = append(canon, a)
	}
	sort.Ints(canon)

	var sb strings.Builder
	for i, a := range canon {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(a))
	}

	return canon, sb.String()
}

// AddNode inserts a node for the (possibly unsorted, possibly
// duplicate-laden) achiever set actionIDs, returning its node id. An
// achiever set identical to an existing node's (element order
// irrelevant) returns that node's existing id — nodes are canonically
// deduplicated.
//
// actionIDs must be non-empty; an empty achiever set is a programmer
// error (a landmark with no possible achievers is a dead end detected
// upstream by the status manager, never a DALM node).
func (g *Graph) AddNode(actionIDs []int) int {
	canon, key := canonicalKey(actionIDs)
	if len(canon) == 0 {
		panic("dalm: AddNode called with empty achiever set")
	}
	if id, ok := g.index[key]; ok {
		return id
	}
	id := len(g.actions)
	g.actions = append(g.actions, canon)
	g.index[key] = id

	return id
}

// NumLandmarks returns the number of DALM nodes.
func (g *Graph) NumLandmarks() int { return len(g.actions) }

// Actions returns node i's canonical achiever set. Panics on an
// out-of-range id.
func (g *Graph) Actions(i int) []int {
	if i < 0 || i >= len(g.actions) {
		panic("dalm: unknown node id")
	}

	return g.actions[i]
}

// Dependencies returns the ids of nodes u has an outgoing edge to.
func (g *Graph) Dependencies(u int) []int {
	edges := g.children[u]
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

// Children returns the outgoing edges from u.
func (g *Graph) Children(u int) []Edge { return g.children[u] }

// OrderingType returns the ordering kind of edge u -> v, or ok == false
// if no such edge exists.
func (g *Graph) OrderingType(u, v int) (OrderingKind, bool) {
	for _, e := range g.children[u] {
		if e.To == v {
			return e.Kind, true
		}
	}

	return Strong, false
}

func (g *Graph) edgeIndex(u, v int) int {
	for i, e := range g.children[u] {
		if e.To == v {
			return i
		}
	}

	return -1
}

// AddStrongDependency records a strong ordering u -> v. Re-adding an
// existing edge never creates a duplicate; adding over an existing weak
// edge upgrades it to strong and decrements NumWeakOrderings.
func (g *Graph) AddStrongDependency(u, v int) {
	if i := g.edgeIndex(u, v); i != -1 {
		if g.children[u][i].Kind == Weak {
			g.children[u][i].Kind = Strong
			g.numWeakOrderings--
		}

		return
	}
	g.children[u] = append(g.children[u], Edge{From: u, To: v, Kind: Strong})
	g.numOrderings++
}

// AddWeakDependency records a weak ordering u -> v. Re-adding an existing
// edge (of either kind) never creates a duplicate and never downgrades an
// existing strong edge.
func (g *Graph) AddWeakDependency(u, v int) {
	if g.edgeIndex(u, v) != -1 {
		return
	}
	g.children[u] = append(g.children[u], Edge{From: u, To: v, Kind: Weak})
	g.numOrderings++
	g.numWeakOrderings++
}

// NumOrderings returns the total number of DALM edges.
func (g *Graph) NumOrderings() int { return g.numOrderings }

// NumWeakOrderings returns the number of weak DALM edges.
func (g *Graph) NumWeakOrderings() int { return g.numWeakOrderings }

// NumStrongOrderings returns the number of strong DALM edges. The
// invariant NumOrderings == NumStrongOrderings + NumWeakOrderings holds
// after any sequence of edge insertions.
func (g *Graph) NumStrongOrderings() int { return g.numOrderings - g.numWeakOrderings }

// Adjacency returns the n x n boolean "is-weak" matrix: Adjacency()[u][v]
// is true iff there is a weak edge u -> v. Strong edges and absent edges
// both read false; callers that also need strong-edge presence should use
// AdjacencyKeysOnly or OrderingType.
func (g *Graph) Adjacency() [][]bool {
	n := len(g.actions)
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
	}
	for u := 0; u < n; u++ {
		for _, e := range g.children[u] {
			out[u][e.To] = e.Kind == Weak
		}
	}

	return out
}

// AdjacencyKeysOnly returns, for every node in id order, the sorted list
// of successor ids reachable by any edge (strong or weak) — the plain
// adjacency-list view cycle enumeration needs.
func (g *Graph) AdjacencyKeysOnly() [][]int {
	n := len(g.actions)
	out := make([][]int, n)
	for u := 0; u < n; u++ {
		deps := g.Dependencies(u)
		sort.Ints(deps)
		out[u] = deps
	}

	return out
}
