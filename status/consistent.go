package status

import (
	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/internal/bitset"
	"github.com/cyclicplan/lmheuristic/landmark"
)

// ConsistentManager is the multi-path-consistent status manager. It
// keeps two per-state bitsets, accepted and required, with
// the invariant accepted[l] ∨ required[l] holding for every landmark —
// strictly stronger than the single-path manager's "past is a lower
// bound" guarantee.
type ConsistentManager struct {
	fg   *landmark.Graph
	opts Options

	accepted map[collab.StateID]*bitset.Set
	required map[collab.StateID]*bitset.Set
	status   map[collab.StateID][]Status
}

// NewConsistentManager constructs a multi-path-consistent status manager over fg.
func NewConsistentManager(fg *landmark.Graph, opts Options) *ConsistentManager {
	return &ConsistentManager{
		fg:       fg,
		opts:     opts,
		accepted: make(map[collab.StateID]*bitset.Set),
		required: make(map[collab.StateID]*bitset.Set),
		status:   make(map[collab.StateID][]Status),
	}
}

// SetLandmarksForInitialState implements Manager.
func (m *ConsistentManager) SetLandmarksForInitialState(s0 collab.State) error {
	n := m.fg.NumLandmarks()
	accepted0 := bitset.NewAllTrue(n)
	required0 := bitset.New(n)
	for _, l := range m.fg.Landmarks() {
		if !l.IsTrueInState(s0) {
			accepted0.Clear(l.ID)
			required0.Set(l.ID)
		}
	}
	// Propagate required-again relatives of every currently-required
	// (future-like) landmark.
	for _, v := range m.fg.Landmarks() {
		if required0.Test(v.ID) {
			propagateRelativesOf(m.fg, m.opts, accepted0, required0, s0, v.ID)
		}
	}
	if m.opts.AddGoalAtoms {
		for _, l := range m.fg.Landmarks() {
			if accepted0.Test(l.ID) && !required0.Test(l.ID) && l.IsTrueInGoal && !l.IsTrueInState(s0) {
				required0.Set(l.ID)
			}
		}
	}
	m.accepted[s0.ID()] = accepted0
	m.required[s0.ID()] = required0

	return nil
}

// UpdateAcceptedLandmarks implements Manager.
func (m *ConsistentManager) UpdateAcceptedLandmarks(p, c collab.State, _ int) (bool, error) {
	if c.ID() == p.ID() {
		return false, nil
	}

	acceptedP := m.orDefault(m.accepted, p.ID(), true)
	requiredP := m.orDefault(m.required, p.ID(), false)
	acceptedCopy := acceptedP.Clone()
	requiredCopy := requiredP.Clone()

	for _, l := range m.fg.Landmarks() {
		if !requiredP.Test(l.ID) || !l.IsTrueInState(c) {
			continue
		}
		acceptedCopy.Set(l.ID)
		if !l.IsTrueInState(p) {
			requiredCopy.Clear(l.ID)
		}
	}

	for _, l := range m.fg.Landmarks() {
		if !acceptedCopy.Test(l.ID) {
			propagateRelativesOf(m.fg, m.opts, acceptedCopy, requiredCopy, c, l.ID)

			continue
		}
		if !requiredCopy.Test(l.ID) && l.IsTrueInGoal && m.opts.AddGoalAtoms && !l.IsTrueInState(c) {
			requiredCopy.Set(l.ID)
		}
	}

	acceptedC := m.orDefault(m.accepted, c.ID(), true)
	acceptedC.Intersect(acceptedCopy)
	requiredC := m.orDefault(m.required, c.ID(), false)
	requiredC.Unite(requiredCopy)
	m.accepted[c.ID()] = acceptedC
	m.required[c.ID()] = requiredC

	return true, nil
}

// orDefault returns the stored bitset for id, or a fresh identity bitset
// (all-true for accepted, all-false for required) if unseen.
func (m *ConsistentManager) orDefault(store map[collab.StateID]*bitset.Set, id collab.StateID, allTrue bool) *bitset.Set {
	if b, ok := store[id]; ok {
		return b
	}
	if allTrue {
		return bitset.NewAllTrue(m.fg.NumLandmarks())
	}

	return bitset.New(m.fg.NumLandmarks())
}

// propagateRelativesOf marks, into required, the greedy-necessary parents
// and reasonable children of landmark v that are currently "past-like"
// (accepted and not required) — the needed-again-again rules shared with
// the multi-path manager, phrased over the accepted/required bitsets.
func propagateRelativesOf(fg *landmark.Graph, opts Options, accepted, required *bitset.Set, c collab.State, v int) {
	if opts.AddGNParents {
		for _, u := range fg.Parents(v) {
			if edgeKind(fg, u, v) < landmark.GreedyNecessary {
				continue
			}
			if !accepted.Test(u) || required.Test(u) {
				continue // not past-like
			}
			if fg.Landmark(u).IsTrueInState(c) {
				continue
			}
			required.Set(u)
		}
	}
	if opts.AddReasonableChildren {
		for _, e := range fg.Children(v) {
			if e.Kind != landmark.Reasonable {
				continue
			}
			if accepted.Test(e.To) && !required.Test(e.To) {
				required.Set(e.To)
			}
		}
	}
}

// UpdateStatus implements Manager.
func (m *ConsistentManager) UpdateStatus(s collab.State) error {
	accepted := m.orDefault(m.accepted, s.ID(), true)
	required := m.orDefault(m.required, s.ID(), false)
	n := m.fg.NumLandmarks()
	out := make([]Status, n)
	for i := 0; i < n; i++ {
		if accepted.Test(i) {
			if required.Test(i) {
				out[i] = PastAndFuture
			} else {
				out[i] = Past
			}
		} else {
			out[i] = Future
		}
	}
	m.status[s.ID()] = out

	return nil
}

// GetStatus implements Manager.
func (m *ConsistentManager) GetStatus(s collab.State, id int) Status {
	st, ok := m.status[s.ID()]
	if !ok || id < 0 || id >= len(st) {
		return Future
	}

	return st[id]
}

// GetAccepted implements Manager.
func (m *ConsistentManager) GetAccepted(s collab.State) *bitset.Set {
	return m.orDefault(m.accepted, s.ID(), true)
}

// DeadEndExists implements Manager.
func (m *ConsistentManager) DeadEndExists(s collab.State) bool {
	accepted, ok1 := m.accepted[s.ID()]
	required, ok2 := m.required[s.ID()]
	if !ok1 || !ok2 {
		return false
	}
	for _, l := range m.fg.Landmarks() {
		acc, req := accepted.Test(l.ID), required.Test(l.ID)
		if !acc && len(l.FirstAchievers) == 0 {
			return true
		}
		if acc && req && len(l.PossibleAchievers) == 0 {
			return true
		}
	}

	return false
}

var _ Manager = (*ConsistentManager)(nil)
