// Package heuristic wires the whole pipeline — fact-landmark graph,
// status manager, DALM, cycle generators, LP solver — into the
// per-state orchestrator (constraint handler) and driver a search
// engine actually calls.
package heuristic

// StatusManagerKind selects one of the three status-manager variants.
type StatusManagerKind int

const (
	LAMA StatusManagerKind = iota
	MultiPath
	Consistent
)

// String renders a StatusManagerKind for diagnostics.
func (k StatusManagerKind) String() string {
	switch k {
	case LAMA:
		return "LAMA"
	case Consistent:
		return "CONSISTENT"
	default:
		return "MULTI_PATH"
	}
}

// CycleGeneratorKind selects the cycle-constraint generation mode.
type CycleGeneratorKind int

const (
	// NoneGenerator adds no cycle constraints at all; the cycle
	// constraint generator is omitted entirely.
	NoneGenerator CycleGeneratorKind = iota
	JohnsonGen
	FloydWarshallGen
	DepthFirstGen
)

// String renders a CycleGeneratorKind for diagnostics.
func (k CycleGeneratorKind) String() string {
	switch k {
	case JohnsonGen:
		return "johnson"
	case FloydWarshallGen:
		return "floyd_warshall"
	case DepthFirstGen:
		return "depth_first"
	default:
		return "NONE"
	}
}

// Options collects the configurable knobs of the heuristic.
type Options struct {
	// UseIntegerOperatorCounts selects MIP variables over continuous LP
	// variables. Default false.
	UseIntegerOperatorCounts bool

	// PathDependent maintains a status manager across the search;
	// false rebuilds FG per state via the factory instead. Default
	// true.
	PathDependent bool

	// StatusManagerKind picks the status-manager variant. Default
	// MultiPath.
	StatusManagerKind StatusManagerKind

	AddGoalAtoms          bool
	AddGNParents          bool
	AddReasonableChildren bool

	// CycleGenerator selects the cycle-constraint mode. Default
	// NoneGenerator.
	CycleGenerator CycleGeneratorKind

	// Strong restricts cycle breakpoints to strong orderings when true.
	// Default true.
	Strong bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PathDependent:     true,
		StatusManagerKind: MultiPath,
		CycleGenerator:    NoneGenerator,
		Strong:            true,
	}
}
