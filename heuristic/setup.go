package heuristic

import (
	"fmt"

	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/cycle"
	"github.com/cyclicplan/lmheuristic/lp"
)

// BuildVariables returns one LP/MIP variable per task operator, indexed
// by operator id, with the operator's cost as objective coefficient.
// integer selects MIP columns.
func BuildVariables(task collab.Task, integer bool) []lp.Variable {
	n := task.NumOperators()
	vars := make([]lp.Variable, n)
	for o := 0; o < n; o++ {
		op := task.Operator(o)
		vars[o] = lp.Variable{
			Name:    fmt.Sprintf("op_%d", op.ID),
			Cost:    float64(op.Cost),
			Integer: integer,
		}
	}

	return vars
}

// Setup loads the base problem into solver: one variable per operator,
// minimising total cost. No constraint rows are loaded
// permanently — the DALM changes from state to state, so the base
// landmark constraints are added per call by lp.LandmarkGenerator and
// cleared together with the cycle constraints.
func Setup(solver lp.Solver, task collab.Task, opts Options) error {
	vars := BuildVariables(task, opts.UseIntegerOperatorCounts)
	if err := solver.LoadProblem(lp.Minimize, vars, nil); err != nil {
		return fmt.Errorf("heuristic: Setup: %w", err)
	}

	return nil
}

// ResolveGenerators builds the ConstraintGenerator chain: the base
// landmark generator always runs first, followed by the cycle generator
// opts.CycleGenerator names. The cycle generator is skipped entirely
// when CycleGenerator is NoneGenerator, or when handler is
// path-dependent and its initial FG is already acyclic, in which case
// the heuristic reduces to the plain disjunctive-action-landmark
// heuristic with no cycle reasoning needed.
func ResolveGenerators(handler *ConstraintHandler, opts Options) []lp.ConstraintGenerator {
	gens := []lp.ConstraintGenerator{lp.LandmarkGenerator{}}
	if opts.CycleGenerator == NoneGenerator {
		return gens
	}
	if opts.PathDependent && handler.InitialFactLandmarkGraphIsAcyclic() {
		return gens
	}

	switch opts.CycleGenerator {
	case JohnsonGen:
		return append(gens, lp.JohnsonGenerator{Strong: opts.Strong})
	case FloydWarshallGen:
		return append(gens, lp.OracleGenerator{Oracle: cycle.FloydWarshallOracle{}, Strong: opts.Strong})
	case DepthFirstGen:
		return append(gens, lp.OracleGenerator{Oracle: cycle.DepthFirstOracle{}, Strong: opts.Strong})
	default:
		return gens
	}
}
