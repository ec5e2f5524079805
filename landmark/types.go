// Package landmark defines the ordering taxonomy for fact landmarks and
// the fact-landmark graph (FG) arena: a directed graph, built once per
// task (or recomputed per state in the non-path-dependent mode), whose
// nodes are facts or fact disjunctions that must hold on every plan and
// whose edges record the orderings a landmark-generation algorithm
// derived between them.
//
// FG is genuinely cyclic — that is the reason the rest of this module
// exists — so it is represented as an arena: landmarks live in a dense
// slice indexed by integer id, and edges are (from, to, kind) triples
// keyed by source id. There is no pointer-cycle to manage.
package landmark

import (
	"errors"
	"fmt"

	"github.com/cyclicplan/lmheuristic/collab"
)

// EdgeKind is a fact-landmark ordering edge kind, from weakest to
// strongest. The zero value is OBEDIENT_REASONABLE.
type EdgeKind int

// The five ordering kinds, in strictly increasing strength order. Numeric
// order is significant: comparisons like k >= NATURAL rely on it.
const (
	ObedientReasonable EdgeKind = iota
	Reasonable
	Natural
	GreedyNecessary
	Necessary
)

// String renders an EdgeKind for diagnostics.
func (k EdgeKind) String() string {
	switch k {
	case ObedientReasonable:
		return "obedient-reasonable"
	case Reasonable:
		return "reasonable"
	case Natural:
		return "natural"
	case GreedyNecessary:
		return "greedy-necessary"
	case Necessary:
		return "necessary"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// IsStrong reports whether k is GREEDY_NECESSARY or stronger.
func (k EdgeKind) IsStrong() bool { return k >= GreedyNecessary }

// IsWeak reports whether k is REASONABLE or weaker.
func (k EdgeKind) IsWeak() bool { return k <= Reasonable }

// Landmark is a single fact-landmark graph node: a conjunction or
// disjunction of facts, the action ids known to be able to achieve it,
// and whether it is required at the goal.
type Landmark struct {
	// ID is this landmark's position in the owning Graph's arena.
	ID int

	// Facts is the conjunction (Disjunctive == false) or disjunction
	// (Disjunctive == true) of facts this landmark represents.
	Facts []collab.Fact

	// Disjunctive selects OR semantics over Facts; false means AND.
	Disjunctive bool

	// FirstAchievers is the set of operator ids that can be the very
	// first action to establish this landmark.
	FirstAchievers []int

	// PossibleAchievers is the set of operator ids that can ever
	// establish this landmark. Always a superset of FirstAchievers.
	PossibleAchievers []int

	// IsTrueInGoal marks landmarks that also appear in the task's goal.
	IsTrueInGoal bool
}

// IsTrueInState reports whether l holds in state s, honoring Disjunctive.
// A landmark with no Facts is considered false (a programmer error in
// construction, not a runtime one — landmarks are always built with at
// least one fact).
func (l *Landmark) IsTrueInState(s collab.State) bool {
	if len(l.Facts) == 0 {
		return false
	}
	if l.Disjunctive {
		for _, f := range l.Facts {
			if s.Holds(f) {
				return true
			}
		}

		return false
	}
	for _, f := range l.Facts {
		if !s.Holds(f) {
			return false
		}
	}

	return true
}

// Edge is a fact-landmark ordering edge (u -> v) of the given kind.
type Edge struct {
	From int
	To   int
	Kind EdgeKind
}

// Sentinel errors. Construction/query errors are returned; referencing an
// unknown landmark id is a programmer error and panics instead.
var (
	// ErrNilLandmark is returned by AddLandmark(nil).
	ErrNilLandmark = errors.New("landmark: nil landmark")

	// ErrDuplicateID is returned when AddLandmark is given an id other than
	// the arena's next free index (an id already present, or one that skips ahead).
	ErrDuplicateID = errors.New("landmark: duplicate landmark id")
)

// Graph is the fact-landmark graph (FG): an arena of Landmark nodes plus
// directed ordering edges between them. Construction and queries are
// single-threaded; no internal locking.
type Graph struct {
	nodes    []*Landmark    // index == Landmark.ID
	children map[int][]Edge // u -> outgoing edges
	parents  map[int][]int  // v -> ids of landmarks with an edge into v
}

// NewGraph returns an empty FG arena.
func NewGraph() *Graph {
	return &Graph{
		children: make(map[int][]Edge),
		parents:  make(map[int][]int),
	}
}

// AddLandmark appends l to the arena. l.ID must equal the arena's next
// free index (0, 1, 2, ... in insertion order); this keeps "index ==
// Landmark.ID" true without a separate id allocator.
func (g *Graph) AddLandmark(l *Landmark) error {
	if l == nil {
		return ErrNilLandmark
	}
	if l.ID != len(g.nodes) {
		return fmt.Errorf("%w: got %d, want %d", ErrDuplicateID, l.ID, len(g.nodes))
	}
	g.nodes = append(g.nodes, l)

	return nil
}

// NumLandmarks returns the number of landmarks in the arena.
func (g *Graph) NumLandmarks() int { return len(g.nodes) }

// Landmark returns the landmark with the given id. Panics on an
// out-of-range id: querying a non-existent landmark is a programmer error.
func (g *Graph) Landmark(id int) *Landmark {
	if id < 0 || id >= len(g.nodes) {
		panic(fmt.Sprintf("landmark: unknown landmark id %d", id))
	}

	return g.nodes[id]
}

// Landmarks returns every landmark in id order. The returned slice is
// owned by the caller (a fresh copy of the header, shared element pointers).
func (g *Graph) Landmarks() []*Landmark {
	out := make([]*Landmark, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// AddEdge records an ordering edge u -> v of the given kind. Both u and v
// must already exist in the arena.
func (g *Graph) AddEdge(u, v int, kind EdgeKind) {
	_ = g.Landmark(u) // panics if u unknown
	_ = g.Landmark(v) // panics if v unknown
	g.children[u] = append(g.children[u], Edge{From: u, To: v, Kind: kind})
	g.parents[v] = append(g.parents[v], u)
}

// Children returns the outgoing edges from u.
func (g *Graph) Children(u int) []Edge { return g.children[u] }

// Parents returns the ids of landmarks with an edge directly into v.
func (g *Graph) Parents(v int) []int { return g.parents[v] }

// IsAcyclic reports whether FG is acyclic, using Kahn's algorithm over
// all edge kinds uniformly (the topology, not the ordering strength, is
// what matters for this check).
//
// Complexity: O(V + E).
func (g *Graph) IsAcyclic() bool {
	indeg := make([]int, len(g.nodes))
	for u := range g.nodes {
		for _, e := range g.children[u] {
			indeg[e.To]++
		}
	}

	queue := make([]int, 0, len(g.nodes))
	for id, d := range indeg {
		if d == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited++
		for _, e := range g.children[u] {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	return visited == len(g.nodes)
}
