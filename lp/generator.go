package lp

import (
	"fmt"

	"github.com/cyclicplan/lmheuristic/cycle"
	"github.com/cyclicplan/lmheuristic/dalm"
	"github.com/cyclicplan/lmheuristic/johnson"
)

// ConstraintGenerator updates solver's temporary constraints against the
// current DALM dg, reporting whether it detected a dead end. The
// permanently loaded problem carries only the operator variables; every
// constraint — base landmark rows included — is temporary, rebuilt per
// heuristic call against the current DALM.
//
// When no cycle generation mode is configured, no cycle
// ConstraintGenerator is used at all; the driver runs with
// LandmarkGenerator alone.
type ConstraintGenerator interface {
	UpdateConstraints(dg *dalm.Graph, solver Solver) (deadEnd bool, err error)
}

// LandmarkGenerator adds the base landmark constraints — one per node
// of the current DALM — as temporary constraints on every call. The DALM changes from state to state, so these rows cannot
// live in the permanently loaded problem; the loaded problem carries
// only the operator-count variables.
type LandmarkGenerator struct{}

// UpdateConstraints implements ConstraintGenerator.
func (LandmarkGenerator) UpdateConstraints(dg *dalm.Graph, solver Solver) (bool, error) {
	cons := BuildBaseConstraints(dg)
	if len(cons) == 0 {
		return false, nil
	}
	if err := solver.AddTemporaryConstraints(cons); err != nil {
		return false, fmt.Errorf("lp: LandmarkGenerator.UpdateConstraints: %w", err)
	}

	return false, nil
}

// JohnsonGenerator implements the "enumerate all cycles once" mode:
// every elementary cycle of dg gets a constraint, added up front, and
// the driver solves exactly once afterward.
type JohnsonGenerator struct {
	// Strong restricts eligible cycle breakpoints to strong DALM edges.
	Strong bool
}

// UpdateConstraints implements ConstraintGenerator.
func (g JohnsonGenerator) UpdateConstraints(dg *dalm.Graph, solver Solver) (bool, error) {
	cycles := johnson.EnumerateCycles(dg)
	cons := BuildAllCycleConstraints(dg, cycles, g.Strong)
	if len(cons) == 0 {
		return false, nil
	}
	if err := solver.AddTemporaryConstraints(cons); err != nil {
		return false, fmt.Errorf("lp: JohnsonGenerator.UpdateConstraints: %w", err)
	}

	return false, nil
}

// OracleGenerator implements the implicit-hitting-set mode: solve,
// extract the solution, ask the oracle for a violated cycle, add its
// constraint, repeat.
// Oracle is either a cycle.FloydWarshallOracle or a cycle.DepthFirstOracle.
type OracleGenerator struct {
	Oracle cycle.Oracle
	Strong bool
}

// UpdateConstraints implements ConstraintGenerator. It drives the
// solver itself (one or more Solve calls) until either the LP is
// infeasible (dead end) or the oracle reports no remaining violated
// cycle, at which point the solver is left holding an optimal solution
// for the driver to read the objective from.
func (g OracleGenerator) UpdateConstraints(dg *dalm.Graph, solver Solver) (bool, error) {
	for {
		if err := solver.Solve(); err != nil {
			return false, fmt.Errorf("lp: OracleGenerator.UpdateConstraints: %w", err)
		}
		if !solver.HasOptimalSolution() {
			return true, nil
		}

		weights := LandmarkWeights(dg, solver.ExtractSolution())

		cyc, err := g.Oracle.FindCycle(dg, weights, g.Strong)
		if err != nil {
			return false, fmt.Errorf("lp: OracleGenerator.UpdateConstraints: %w", err)
		}
		if len(cyc) == 0 {
			return false, nil
		}

		con, ok := BuildCycleConstraint(dg, cyc, g.Strong)
		if !ok {
			// The oracle respects the strong filter, so a returned cycle
			// always carries at least one eligible edge; an empty
			// constraint means there is nothing left to add.
			return false, nil
		}
		if err := solver.AddTemporaryConstraints([]Constraint{con}); err != nil {
			return false, fmt.Errorf("lp: OracleGenerator.UpdateConstraints: %w", err)
		}
	}
}
