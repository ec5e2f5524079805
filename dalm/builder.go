package dalm

import (
	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/landmark"
	"github.com/cyclicplan/lmheuristic/status"
)

// Absent is the sentinel FactToDALM value for a fact landmark with no
// corresponding DALM node (it was not included — already satisfied and a
// root, or already PAST).
const Absent = -1

// Build converts fg (evaluated against state s, and against mgr's status
// if mgr is non-nil) into a DALM.
//
// mgr == nil selects the eager, non-path-dependent construction: every
// fact landmark is included unless it is already true in s and has no
// parents. mgr != nil selects the path-dependent construction: only
// landmarks with status != PAST are included.
//
// Build returns the DALM together with the map from fg landmark id to
// DALM node id (Absent for landmarks that were not included).
func Build(fg *landmark.Graph, s collab.State, mgr status.Manager) (*Graph, []int, error) {
	g := NewGraph()
	factToDALM := make([]int, fg.NumLandmarks())
	for i := range factToDALM {
		factToDALM[i] = Absent
	}

	included := make([]bool, fg.NumLandmarks())
	for _, l := range fg.Landmarks() {
		if !includeNode(fg, l, s, mgr) {
			continue
		}
		included[l.ID] = true
		factToDALM[l.ID] = g.AddNode(l.PossibleAchievers)
	}

	for _, u := range fg.Landmarks() {
		if !included[u.ID] {
			continue
		}
		for _, e := range fg.Children(u.ID) {
			if !included[e.To] {
				continue
			}
			if !edgeEligible(fg, u.ID, e, s, mgr) {
				continue
			}
			addOrderingEdge(g, factToDALM[u.ID], factToDALM[e.To], e.Kind)
		}
	}

	return g, factToDALM, nil
}

// includeNode decides whether fact landmark l becomes a DALM node.
func includeNode(fg *landmark.Graph, l *landmark.Landmark, s collab.State, mgr status.Manager) bool {
	if mgr == nil {
		return !(l.IsTrueInState(s) && len(fg.Parents(l.ID)) == 0)
	}

	return mgr.GetStatus(s, l.ID) != status.Past
}

// edgeEligible decides whether the fact-landmark edge u -> e.To survives
// into the DALM.
func edgeEligible(fg *landmark.Graph, u int, e landmark.Edge, s collab.State, mgr status.Manager) bool {
	uLandmark := fg.Landmark(u)

	if mgr == nil {
		return !uLandmark.IsTrueInState(s)
	}

	if mgr.GetStatus(s, e.To) == status.Past {
		return false
	}

	switch mgr.GetStatus(s, u) {
	case status.PastAndFuture:
		if e.Kind < landmark.GreedyNecessary {
			return false
		}
		if uLandmark.IsTrueInState(s) {
			return false
		}

		return mgr.GetStatus(s, e.To) == status.Future
	default: // Future (Past already excluded by includeNode/caller)
		return true
	}
}

// addOrderingEdge applies the kind -> ordering mapping and adds the
// resulting edge to g, if any.
func addOrderingEdge(g *Graph, uNode, vNode int, kind landmark.EdgeKind) {
	if kind >= landmark.Natural {
		g.AddStrongDependency(uNode, vNode)

		return
	}
	if kind == landmark.Reasonable && !shareAction(g.Actions(uNode), g.Actions(vNode)) {
		g.AddWeakDependency(uNode, vNode)
	}
	// Else: reasonable ordering with overlapping achievers (executing
	// the shared action resolves both landmarks in one step), or an
	// obedient-reasonable edge — dropped. The suppression applies to
	// reasonable orderings only, never to natural-or-stronger edges.
}

// shareAction reports whether the two canonical (sorted) achiever sets
// intersect.
func shareAction(a, b []int) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return true
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return false
}
