// Package status implements the landmark status manager family: per
// search-state tracking of which landmarks are known to have held on
// every path from the initial state (PAST), are still required on every
// completion (FUTURE), or both (PAST_AND_FUTURE — held, but needed
// again). Three variants are provided: single-path (LAMA-style
// intersection), multi-path, and multi-path consistent (two-bitset
// accepted/required invariant).
package status

import (
	"errors"

	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/internal/bitset"
	"github.com/cyclicplan/lmheuristic/landmark"
)

// Status is a landmark's three-valued classification for a search state.
type Status int

const (
	// Past means the landmark has held on every path from the initial state.
	Past Status = iota
	// Future means the landmark must still be achieved on every completion.
	Future
	// PastAndFuture means the landmark has held but is needed again.
	PastAndFuture
)

// String renders a Status for diagnostics.
func (s Status) String() string {
	switch s {
	case Past:
		return "PAST"
	case Future:
		return "FUTURE"
	case PastAndFuture:
		return "PAST_AND_FUTURE"
	default:
		return "UNKNOWN"
	}
}

// Options toggles the "needed again" propagation rules shared by the
// multi-path and multi-path-consistent variants.
type Options struct {
	// AddGoalAtoms marks a PAST goal landmark not currently true as needed again.
	AddGoalAtoms bool

	// AddGNParents marks a PAST greedy-necessary parent of a FUTURE landmark,
	// not currently true, as needed again.
	AddGNParents bool

	// AddReasonableChildren marks a PAST reasonable child of a FUTURE
	// landmark as needed again.
	AddReasonableChildren bool
}

// ErrUnknownState names a reference to a state a manager has never
// observed via SetLandmarksForInitialState or UpdateAcceptedLandmarks.
// The managers in this package do not return it: an unseen state reads
// as an all-true (identity) accepted bitset, and GetStatus reports FUTURE
// for a state whose status was never derived.
var ErrUnknownState = errors.New("status: unknown state")

// Manager is the common interface shared by all status-manager variants.
type Manager interface {
	// SetLandmarksForInitialState initializes status tracking at the root
	// of the search.
	SetLandmarksForInitialState(s0 collab.State) error

	// UpdateAcceptedLandmarks propagates p's accepted-landmark state to c
	// across the transition (p, op, c). Returns false iff c.ID() == p.ID()
	// (a no-op transition); op is the operator id applied, unused by the
	// bitset arithmetic itself but part of the transition's identity.
	UpdateAcceptedLandmarks(p, c collab.State, op int) (bool, error)

	// UpdateStatus (re)derives lm_status for state s from its accepted
	// bitset(s). Must be called before GetStatus/GetAccepted/DeadEndExists
	// are consulted for s.
	UpdateStatus(s collab.State) error

	// GetStatus returns the last-derived status of landmark id for s.
	GetStatus(s collab.State, id int) Status

	// GetAccepted returns a read-only view of the accepted bitset for s.
	GetAccepted(s collab.State) *bitset.Set

	// DeadEndExists reports whether s is provably a dead end: some
	// non-derived landmark has status FUTURE with no first achievers, or
	// status PAST_AND_FUTURE (accepted and required) with no possible
	// achievers.
	DeadEndExists(s collab.State) bool
}

// allParentsPast reports whether every parent of landmark id (in fg) has
// its bit set in past. Edge-kind-agnostic: a reasonable parent counts
// the same as a necessary one.
func allParentsPast(fg *landmark.Graph, past *bitset.Set, id int) bool {
	for _, q := range fg.Parents(id) {
		if !past.Test(q) {
			return false
		}
	}

	return true
}
