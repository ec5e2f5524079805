// Package testutil provides small fakes shared by this module's package
// tests: a minimal collab.State/collab.Task pair and a deterministic
// brute-force lp.Solver. None of it is part of the public API — the real
// task proxy and LP solver are external collaborators this module never
// implements.
package testutil

import (
	"math"

	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/landmark"
	"github.com/cyclicplan/lmheuristic/lp"
)

// FakeState is a collab.State backed by an explicit fact set.
type FakeState struct {
	IDVal collab.StateID
	facts map[collab.Fact]bool
}

// NewFakeState returns a state with the given id and the given facts
// holding true (every other fact is false).
func NewFakeState(id int64, facts ...collab.Fact) *FakeState {
	m := make(map[collab.Fact]bool, len(facts))
	for _, f := range facts {
		m[f] = true
	}

	return &FakeState{IDVal: collab.StateID(id), facts: m}
}

// ID implements collab.State.
func (s *FakeState) ID() collab.StateID { return s.IDVal }

// Holds implements collab.State.
func (s *FakeState) Holds(f collab.Fact) bool { return s.facts[f] }

// FakeTask is a collab.Task backed by explicit slices.
type FakeTask struct {
	Ops         []collab.Operator
	GoalFacts   []collab.Fact
	Initial     collab.State
	Axioms      bool
	CondEffects bool
}

// NumOperators implements collab.Task.
func (t *FakeTask) NumOperators() int { return len(t.Ops) }

// Operator implements collab.Task.
func (t *FakeTask) Operator(o int) collab.Operator { return t.Ops[o] }

// Goal implements collab.Task.
func (t *FakeTask) Goal() []collab.Fact { return t.GoalFacts }

// InitialState implements collab.Task.
func (t *FakeTask) InitialState() collab.State { return t.Initial }

// HasAxioms implements collab.Task.
func (t *FakeTask) HasAxioms() bool { return t.Axioms }

// HasConditionalEffects implements collab.Task.
func (t *FakeTask) HasConditionalEffects() bool { return t.CondEffects }

// FakeFactory is a landmark.Factory backed by a fixed fact-landmark
// graph, returned by both ComputeLMGraph and RecomputeLMGraph (unless
// RecomputeFG overrides the latter).
type FakeFactory struct {
	FG          *landmark.Graph
	RecomputeFG *landmark.Graph

	ReasonableOrders bool
	CondEffects      bool

	ComputeCalls   int
	RecomputeCalls int
}

// NewFakeFactory returns a factory that always hands out fg.
func NewFakeFactory(fg *landmark.Graph) *FakeFactory {
	return &FakeFactory{FG: fg}
}

// ComputeLMGraph implements landmark.Factory.
func (f *FakeFactory) ComputeLMGraph(collab.Task) (*landmark.Graph, error) {
	f.ComputeCalls++

	return f.FG, nil
}

// RecomputeLMGraph implements landmark.Factory.
func (f *FakeFactory) RecomputeLMGraph(collab.State) (*landmark.Graph, error) {
	f.RecomputeCalls++
	if f.RecomputeFG != nil {
		return f.RecomputeFG, nil
	}

	return f.FG, nil
}

// ComputesReasonableOrders implements landmark.Factory.
func (f *FakeFactory) ComputesReasonableOrders() bool { return f.ReasonableOrders }

// SupportsConditionalEffects implements landmark.Factory.
func (f *FakeFactory) SupportsConditionalEffects() bool { return f.CondEffects }

// BruteForceSolver is a deterministic, exhaustive-search lp.Solver for
// tests: it tries every integer assignment in [0, maxPerVar] per
// variable and keeps the cheapest one satisfying every loaded
// constraint. Only suitable for the small instances this module's tests
// exercise — it is not a general LP/MIP solver.
type BruteForceSolver struct {
	vars []lp.Variable
	base []lp.Constraint
	temp []lp.Constraint

	maxPerVar int

	optimal   bool
	objective float64
	solution  []float64
}

// NewBruteForceSolver returns a solver that searches each variable's
// domain over [0, maxPerVar].
func NewBruteForceSolver(maxPerVar int) *BruteForceSolver {
	return &BruteForceSolver{maxPerVar: maxPerVar}
}

// LoadProblem implements lp.Solver.
func (s *BruteForceSolver) LoadProblem(_ lp.Sense, vars []lp.Variable, constraints []lp.Constraint) error {
	s.vars = vars
	s.base = constraints

	return nil
}

// Infinity implements lp.Solver.
func (s *BruteForceSolver) Infinity() float64 { return math.Inf(1) }

// AddTemporaryConstraints implements lp.Solver.
func (s *BruteForceSolver) AddTemporaryConstraints(constraints []lp.Constraint) error {
	s.temp = append(s.temp, constraints...)

	return nil
}

// ClearTemporaryConstraints implements lp.Solver.
func (s *BruteForceSolver) ClearTemporaryConstraints() error {
	s.temp = nil

	return nil
}

// HasTemporaryConstraints implements lp.Solver.
func (s *BruteForceSolver) HasTemporaryConstraints() bool { return len(s.temp) > 0 }

// Solve implements lp.Solver via exhaustive search.
func (s *BruteForceSolver) Solve() error {
	n := len(s.vars)
	all := make([]lp.Constraint, 0, len(s.base)+len(s.temp))
	all = append(all, s.base...)
	all = append(all, s.temp...)

	assign := make([]float64, n)
	best := math.Inf(1)
	var bestSol []float64
	found := false

	var rec func(i int)
	rec = func(i int) {
		if i == n {
			for _, c := range all {
				var sum float64
				for idx, coeff := range c.Coeffs {
					sum += coeff * assign[idx]
				}
				if sum < c.RHS-1e-9 {
					return
				}
			}

			var obj float64
			for idx, v := range s.vars {
				obj += v.Cost * assign[idx]
			}
			if obj < best {
				best = obj
				bestSol = append([]float64(nil), assign...)
				found = true
			}

			return
		}
		for v := 0; v <= s.maxPerVar; v++ {
			assign[i] = float64(v)
			rec(i + 1)
		}
	}
	rec(0)

	s.optimal = found
	if found {
		s.objective = best
		s.solution = bestSol
	}

	return nil
}

// HasOptimalSolution implements lp.Solver.
func (s *BruteForceSolver) HasOptimalSolution() bool { return s.optimal }

// ObjectiveValue implements lp.Solver.
func (s *BruteForceSolver) ObjectiveValue() float64 { return s.objective }

// ExtractSolution implements lp.Solver.
func (s *BruteForceSolver) ExtractSolution() []float64 { return s.solution }
