// Package lp defines the LP/MIP abstraction consumed by the heuristic
// driver. The solver itself is an external collaborator — this package
// only describes the shape of the problem (variables, constraints,
// sense) and the interface a concrete solver backend must satisfy; no
// solver implementation lives here.
package lp

import "fmt"

// Sense is the optimization direction of a loaded problem.
type Sense int

const (
	// Minimize is the only sense the heuristic driver ever loads.
	Minimize Sense = iota
	Maximize
)

// Variable is one non-negative LP/MIP column: one per operator, with
// objective coefficient equal to the operator's cost. Upper bound is
// +Inf (use Solver.Infinity()); Integer selects MIP mode for this
// variable per the use_integer_operator_counts option.
type Variable struct {
	Name       string
	Cost       float64
	Integer    bool
	LowerBound float64 // always 0 in this core; carried for completeness
}

// Constraint is a single linear inequality Σ coeff_i * x_i ∘ RHS, where
// ∘ is GreaterEqual for every constraint this core ever builds (base
// landmark constraints and cycle constraints are both lower-bound
// constraints).
type Constraint struct {
	// Coeffs maps variable index (into the Variables slice passed to
	// LoadProblem) to its coefficient. Repeated operator ids across a
	// cycle's landmark sets are summed with multiplicity before being
	// stored here — see BuildCycleConstraint.
	Coeffs map[int]float64
	RHS    float64
}

// NewConstraint returns an empty >= constraint with threshold rhs.
func NewConstraint(rhs float64) Constraint {
	return Constraint{Coeffs: make(map[int]float64), RHS: rhs}
}

// Add accumulates delta onto the coefficient of variable i (summing
// with multiplicity on repeat calls for the same i).
func (c Constraint) Add(i int, delta float64) {
	c.Coeffs[i] += delta
}

// Solver is the abstract external LP/MIP collaborator. A concrete
// backend (e.g. a CBC/GLPK/CPLEX binding) implements this interface;
// this core never constructs one.
type Solver interface {
	// LoadProblem installs the base problem: variables plus any
	// permanent constraints. Called exactly once during setup; this
	// core loads variables only, since both the landmark and the cycle
	// rows depend on the current DALM and arrive as temporary
	// constraints.
	LoadProblem(sense Sense, vars []Variable, constraints []Constraint) error

	// Infinity returns the solver's representation of +Inf for variable
	// upper bounds.
	Infinity() float64

	// AddTemporaryConstraints appends constraints that will be removed
	// by the next ClearTemporaryConstraints call.
	AddTemporaryConstraints(constraints []Constraint) error

	// ClearTemporaryConstraints removes every constraint added via
	// AddTemporaryConstraints since the last clear (or since
	// LoadProblem, if none were added), restoring the base problem.
	ClearTemporaryConstraints() error

	// HasTemporaryConstraints reports whether any temporary constraint
	// is currently loaded.
	HasTemporaryConstraints() bool

	// Solve runs the solver against the currently loaded problem.
	Solve() error

	// HasOptimalSolution reports whether the most recent Solve call
	// found an optimal solution (false signals infeasibility, mapped by
	// the driver to DEAD_END).
	HasOptimalSolution() bool

	// ObjectiveValue returns the optimal objective value of the most
	// recent solve. Only valid when HasOptimalSolution is true.
	ObjectiveValue() float64

	// ExtractSolution returns the per-variable solution values, in the
	// same order as the Variables slice passed to LoadProblem. Only
	// valid when HasOptimalSolution is true.
	ExtractSolution() []float64
}

// ErrNoTemporaryConstraintsExpected describes a solver that still carries
// temporary constraints where none are expected. Nothing in this module
// returns it: heuristic.Driver.Evaluate reports that case with
// heuristic.ErrTemporaryConstraintsPresent.
var ErrNoTemporaryConstraintsExpected = fmt.Errorf("lp: solver already carries temporary constraints")
