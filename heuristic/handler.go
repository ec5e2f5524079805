package heuristic

import (
	"errors"
	"fmt"

	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/dalm"
	"github.com/cyclicplan/lmheuristic/landmark"
	"github.com/cyclicplan/lmheuristic/status"
)

// ErrTaskMismatch is returned by Initialize when called a second time
// with a task other than the one it was first initialized with.
var ErrTaskMismatch = errors.New("heuristic: two distinct tasks submitted to the same factory")

// ErrNotInitialized is returned by any ConstraintHandler method called
// before Initialize.
var ErrNotInitialized = errors.New("heuristic: ConstraintHandler not initialized")

// Stats accumulates diagnostic counters across a ConstraintHandler's
// lifetime.
type Stats struct {
	DALMBuilds              int
	DALMRebuildsFromStatus  int
	DALMRebuildsFromFactory int
}

// ConstraintHandler is the process-lifetime orchestrator: a single
// owned instance holds the landmark factory, the task, the optional
// status manager, and the most recently built DALM, memoized by state
// id. Construct one per search and thread it explicitly; there is no
// package-level singleton.
type ConstraintHandler struct {
	initialized bool

	factory landmark.Factory
	task    collab.Task
	opts    Options

	statusMgr status.Manager
	fg        *landmark.Graph

	haveState   bool
	lastStateID collab.StateID
	dalm        *dalm.Graph
	factToDALM  []int

	Stats Stats
}

// NewConstraintHandler returns an uninitialized handler.
func NewConstraintHandler() *ConstraintHandler {
	return &ConstraintHandler{}
}

// Initialize installs the landmark factory, task, and options. It is
// idempotent: a second call carrying the same task is a no-op; a second
// call carrying a different task fails with ErrTaskMismatch.
func (h *ConstraintHandler) Initialize(factory landmark.Factory, task collab.Task, opts Options) error {
	if h.initialized {
		if h.task != task {
			return ErrTaskMismatch
		}

		return nil
	}
	if task.HasAxioms() || task.HasConditionalEffects() {
		return fmt.Errorf("heuristic: Initialize: %w", collab.ErrUnsupportedTask)
	}

	h.factory = factory
	h.task = task
	h.opts = opts
	h.initialized = true

	return nil
}

// newStatusManager builds the status-manager variant opts selects.
func newStatusManager(opts Options, fg *landmark.Graph) status.Manager {
	so := status.Options{
		AddGoalAtoms:          opts.AddGoalAtoms,
		AddGNParents:          opts.AddGNParents,
		AddReasonableChildren: opts.AddReasonableChildren,
	}

	switch opts.StatusManagerKind {
	case LAMA:
		return status.NewLAMAManager(fg, so)
	case Consistent:
		return status.NewConsistentManager(fg, so)
	default:
		return status.NewMultiPathManager(fg, so)
	}
}

// GetDALM returns the DALM for state s (and its fact-landmark-id to
// DALM-id map), rebuilding and caching it only when s.ID() differs from
// the last request.
func (h *ConstraintHandler) GetDALM(s collab.State) (*dalm.Graph, []int, error) {
	if !h.initialized {
		return nil, nil, ErrNotInitialized
	}
	if h.haveState && s.ID() == h.lastStateID {
		return h.dalm, h.factToDALM, nil
	}

	var (
		dg  *dalm.Graph
		f2d []int
		err error
		mgr status.Manager
	)

	switch {
	case !h.haveState:
		fg, cErr := h.factory.ComputeLMGraph(h.task)
		if cErr != nil {
			return nil, nil, fmt.Errorf("heuristic: ConstraintHandler.GetDALM: %w", cErr)
		}
		h.fg = fg

		if h.opts.PathDependent {
			mgr = newStatusManager(h.opts, fg)
			if err = mgr.SetLandmarksForInitialState(s); err != nil {
				return nil, nil, fmt.Errorf("heuristic: ConstraintHandler.GetDALM: %w", err)
			}
			if err = mgr.UpdateStatus(s); err != nil {
				return nil, nil, fmt.Errorf("heuristic: ConstraintHandler.GetDALM: %w", err)
			}
			h.statusMgr = mgr
		}

		dg, f2d, err = dalm.Build(fg, s, h.statusMgr)
		h.Stats.DALMBuilds++

	case h.opts.PathDependent:
		dg, f2d, err = dalm.Build(h.fg, s, h.statusMgr)
		h.Stats.DALMRebuildsFromStatus++

	default:
		fg, rErr := h.factory.RecomputeLMGraph(s)
		if rErr != nil {
			return nil, nil, fmt.Errorf("heuristic: ConstraintHandler.GetDALM: %w", rErr)
		}
		h.fg = fg
		dg, f2d, err = dalm.Build(fg, s, nil)
		h.Stats.DALMRebuildsFromFactory++
	}
	if err != nil {
		return nil, nil, fmt.Errorf("heuristic: ConstraintHandler.GetDALM: %w", err)
	}

	h.dalm, h.factToDALM = dg, f2d
	h.haveState = true
	h.lastStateID = s.ID()

	return h.dalm, h.factToDALM, nil
}

// NotifyTransition forwards a search transition (p, op, c) to the status
// manager, if path-dependent mode is active. A no-op otherwise.
func (h *ConstraintHandler) NotifyTransition(p, c collab.State, op int) error {
	if h.statusMgr == nil {
		return nil
	}
	if _, err := h.statusMgr.UpdateAcceptedLandmarks(p, c, op); err != nil {
		return fmt.Errorf("heuristic: ConstraintHandler.NotifyTransition: %w", err)
	}
	if err := h.statusMgr.UpdateStatus(c); err != nil {
		return fmt.Errorf("heuristic: ConstraintHandler.NotifyTransition: %w", err)
	}

	return nil
}

// DeadEndExists reports whether the status manager (if any) has proven
// state s a dead end.
func (h *ConstraintHandler) DeadEndExists(s collab.State) bool {
	if h.statusMgr == nil {
		return false
	}

	return h.statusMgr.DeadEndExists(s)
}

// InitialFactLandmarkGraphIsAcyclic reports whether FG is acyclic, used
// to decide whether cycle constraints can be skipped entirely in
// path-dependent mode.
func (h *ConstraintHandler) InitialFactLandmarkGraphIsAcyclic() bool {
	if h.fg == nil {
		return false
	}

	return h.fg.IsAcyclic()
}

// PathDependent reports the configured mode.
func (h *ConstraintHandler) PathDependent() bool { return h.opts.PathDependent }
