// Package collab declares the interfaces the heuristic core consumes from
// its external collaborators: the planning task abstraction and the
// search state. The fact landmark factory and the LP/MIP solver
// interfaces live in packages landmark and lp. These components live with
// the search engine and the planner frontend — this package is the seam,
// not the engine behind it.
package collab

import "fmt"

// Fact is a single (variable, value) proposition over the planning task's
// finite-domain state representation.
type Fact struct {
	Var int
	Val int
}

// String renders a Fact as "var=val" for diagnostics and log lines.
func (f Fact) String() string { return fmt.Sprintf("%d=%d", f.Var, f.Val) }

// StateID identifies a search state. Equality of StateID is the only
// thing the heuristic core relies on (it never compares states structurally).
type StateID int64

// State is the minimal view of a search state the heuristic core needs:
// its identity (for DALM memoization) and fact membership (for landmark
// truth evaluation).
type State interface {
	// ID returns this state's identity for cache invalidation purposes.
	ID() StateID

	// Holds reports whether fact f is true in this state.
	Holds(f Fact) bool
}

// Operator is a planning action: a non-negative cost and a set of
// precondition/effect facts. Conditional effects and axioms are rejected
// by the task proxy before a task reaches this core.
type Operator struct {
	ID   int
	Cost int64
	Pre  []Fact
	Eff  []Fact
}

// Task is the planning task proxy: variables, operators, goal, and initial
// state. Implementations must reject tasks with axioms or conditional
// effects (ErrUnsupportedTask) before handing the task to the heuristic core.
type Task interface {
	// NumOperators reports the number of operators; valid operator ids are [0, NumOperators()).
	NumOperators() int

	// Operator returns operator o's definition.
	Operator(o int) Operator

	// Goal returns the conjunction of facts that must hold at the goal.
	Goal() []Fact

	// InitialState returns the task's initial state.
	InitialState() State

	// HasAxioms and HasConditionalEffects report unsupported task features;
	// a landmark factory must refuse such tasks with ErrUnsupportedTask.
	HasAxioms() bool
	HasConditionalEffects() bool
}

// ErrUnsupportedTask signals a task with axioms or conditional effects,
// neither of which this heuristic core supports.
var ErrUnsupportedTask = fmt.Errorf("collab: task has axioms or conditional effects, unsupported")
