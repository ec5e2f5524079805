package status

import (
	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/landmark"
)

// MultiPathManager is the multi-path status manager: it shares
// LAMAManager's past-bitset bookkeeping exactly, and extends
// UpdateStatus with three additional, independently toggled "needed
// again" propagation rules.
type MultiPathManager struct {
	*LAMAManager
}

// NewMultiPathManager constructs a multi-path status manager over fg.
func NewMultiPathManager(fg *landmark.Graph, opts Options) *MultiPathManager {
	return &MultiPathManager{LAMAManager: NewLAMAManager(fg, opts)}
}

// UpdateStatus implements Manager, extending the single-path derivation
// with the toggled needed-again-again passes.
func (m *MultiPathManager) UpdateStatus(s collab.State) error {
	base := m.deriveBaseAndUpgrade(s)
	m.extendNeededAgain(s, base)
	m.status[s.ID()] = base

	return nil
}

// extendNeededAgain applies the three toggled propagation rules in place
// over base, which already carries the single-path PAST/FUTURE/BOTH
// classification.
func (m *MultiPathManager) extendNeededAgain(s collab.State, base []Status) {
	fg := m.fg
	opts := m.opts

	if opts.AddGNParents {
		for _, v := range fg.Landmarks() {
			if base[v.ID] != Future {
				continue
			}
			for _, u := range fg.Parents(v.ID) {
				if base[u] != Past {
					continue
				}
				if edgeKind(fg, u, v.ID) < landmark.GreedyNecessary {
					continue
				}
				if fg.Landmark(u).IsTrueInState(s) {
					continue
				}
				base[u] = PastAndFuture
			}
		}
	}

	if opts.AddReasonableChildren {
		for _, v := range fg.Landmarks() {
			if base[v.ID] != Future {
				continue
			}
			for _, e := range fg.Children(v.ID) {
				if e.Kind != landmark.Reasonable {
					continue
				}
				if base[e.To] == Past {
					base[e.To] = PastAndFuture
				}
			}
		}
	}

	if opts.AddGoalAtoms {
		for _, l := range fg.Landmarks() {
			if base[l.ID] != Past {
				continue
			}
			if l.IsTrueInGoal && !l.IsTrueInState(s) {
				base[l.ID] = PastAndFuture
			}
		}
	}
}

// edgeKind returns the ordering kind of the edge u -> v, or -1 if absent.
func edgeKind(fg *landmark.Graph, u, v int) landmark.EdgeKind {
	for _, e := range fg.Children(u) {
		if e.To == v {
			return e.Kind
		}
	}

	return landmark.EdgeKind(-1)
}

// GetAccepted, GetStatus, DeadEndExists, UpdateAcceptedLandmarks,
// SetLandmarksForInitialState are all inherited unchanged from LAMAManager.

var _ Manager = (*MultiPathManager)(nil)
var _ Manager = (*LAMAManager)(nil)
