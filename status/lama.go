package status

import (
	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/internal/bitset"
	"github.com/cyclicplan/lmheuristic/landmark"
)

// LAMAManager is the single-path status manager: it tracks
// one "past" bitset per state, the intersection (over all observed
// parents) of "landmarks known to have held on this path". Two states
// with identical ids always share one past bitset regardless of how many
// parents pushed into it — the intersection is exactly what makes it a
// sound lower bound across every path, not just the last one visited.
type LAMAManager struct {
	fg   *landmark.Graph
	opts Options

	past   map[collab.StateID]*bitset.Set
	status map[collab.StateID][]Status
}

// NewLAMAManager constructs a single-path status manager over fg.
func NewLAMAManager(fg *landmark.Graph, opts Options) *LAMAManager {
	return &LAMAManager{
		fg:     fg,
		opts:   opts,
		past:   make(map[collab.StateID]*bitset.Set),
		status: make(map[collab.StateID][]Status),
	}
}

// SetLandmarksForInitialState implements Manager.
func (m *LAMAManager) SetLandmarksForInitialState(s0 collab.State) error {
	n := m.fg.NumLandmarks()
	past0 := bitset.NewAllTrue(n)
	for _, l := range m.fg.Landmarks() {
		// Landmarks that hold initially AND are roots are the only ones
		// considered past at the start; everything else starts cleared.
		if !l.IsTrueInState(s0) || len(m.fg.Parents(l.ID)) > 0 {
			past0.Clear(l.ID)
		}
	}
	m.past[s0.ID()] = past0

	return nil
}

// UpdateAcceptedLandmarks implements Manager.
func (m *LAMAManager) UpdateAcceptedLandmarks(p, c collab.State, _ int) (bool, error) {
	if c.ID() == p.ID() {
		return false, nil
	}
	m.intersectInto(p, c)
	m.promoteLeaves(c)

	return true, nil
}

// intersectInto computes past[c] <- past[c] (or all-true if unseen) ∩ past[p].
func (m *LAMAManager) intersectInto(p, c collab.State) {
	pastP, ok := m.past[p.ID()]
	if !ok {
		// A parent this manager never initialized is treated as
		// contributing no information (identity element).
		pastP = bitset.NewAllTrue(m.fg.NumLandmarks())
	}
	pastC, ok := m.past[c.ID()]
	if !ok {
		pastC = bitset.NewAllTrue(m.fg.NumLandmarks())
	}
	pastC.Intersect(pastP)
	m.past[c.ID()] = pastC
}

// promoteLeaves runs the single forward pass that sets past[c][l] for any
// landmark that is now true in c with every parent already past.
func (m *LAMAManager) promoteLeaves(c collab.State) {
	pastC := m.past[c.ID()]
	for _, l := range m.fg.Landmarks() {
		if pastC.Test(l.ID) {
			continue
		}
		if l.IsTrueInState(c) && allParentsPast(m.fg, pastC, l.ID) {
			pastC.Set(l.ID)
		}
	}
}

// UpdateStatus implements Manager.
func (m *LAMAManager) UpdateStatus(s collab.State) error {
	m.status[s.ID()] = m.deriveBaseAndUpgrade(s)

	return nil
}

// deriveBaseAndUpgrade computes PAST/FUTURE from the past bitset, then
// upgrades PAST -> PAST_AND_FUTURE for landmarks needed again.
func (m *LAMAManager) deriveBaseAndUpgrade(s collab.State) []Status {
	past, ok := m.past[s.ID()]
	if !ok {
		past = bitset.NewAllTrue(m.fg.NumLandmarks())
	}
	n := m.fg.NumLandmarks()
	out := make([]Status, n)
	for i := 0; i < n; i++ {
		if past.Test(i) {
			out[i] = Past
		} else {
			out[i] = Future
		}
	}

	for _, l := range m.fg.Landmarks() {
		if out[l.ID] != Past || l.IsTrueInState(s) {
			continue
		}
		if neededAgainBase(m.fg, out, l) {
			out[l.ID] = PastAndFuture
		}
	}

	return out
}

// neededAgainBase implements the single-path "needed again" test: l is
// needed again if it is a goal atom, or some child reached via an edge of
// kind >= GREEDY_NECESSARY currently has base status FUTURE.
func neededAgainBase(fg *landmark.Graph, base []Status, l *landmark.Landmark) bool {
	if l.IsTrueInGoal {
		return true
	}
	for _, e := range fg.Children(l.ID) {
		if e.Kind.IsStrong() && base[e.To] == Future {
			return true
		}
	}

	return false
}

// GetStatus implements Manager.
func (m *LAMAManager) GetStatus(s collab.State, id int) Status {
	st, ok := m.status[s.ID()]
	if !ok || id < 0 || id >= len(st) {
		return Future
	}

	return st[id]
}

// GetAccepted implements Manager. The accepted bitset for the single-path
// variant is exactly the past bitset.
func (m *LAMAManager) GetAccepted(s collab.State) *bitset.Set {
	if b, ok := m.past[s.ID()]; ok {
		return b
	}

	return bitset.NewAllTrue(m.fg.NumLandmarks())
}

// DeadEndExists implements Manager.
func (m *LAMAManager) DeadEndExists(s collab.State) bool {
	st, ok := m.status[s.ID()]
	if !ok {
		return false
	}
	for _, l := range m.fg.Landmarks() {
		switch st[l.ID] {
		case Future:
			if len(l.FirstAchievers) == 0 {
				return true
			}
		case PastAndFuture:
			if len(l.PossibleAchievers) == 0 {
				return true
			}
		}
	}

	return false
}
