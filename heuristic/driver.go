package heuristic

import (
	"errors"
	"fmt"
	"math"

	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/lp"
)

// DeadEnd is the sentinel heuristic value for a provable dead end.
const DeadEnd = -1

// roundingEpsilon is the admissible-rounding tolerance applied before
// taking the ceiling of the objective. Distinct from the cycle-oracle
// weight epsilon in package cycle.
const roundingEpsilon = 0.01

// ErrTemporaryConstraintsPresent signals a violation of the guarantee
// that no temporary constraint survives between heuristic evaluations.
var ErrTemporaryConstraintsPresent = errors.New("heuristic: solver already carries temporary constraints at call entry")

// Driver runs the per-state heuristic evaluation. Generators runs in
// order per call: the base landmark generator first, then the cycle
// generator, if any — the latter is omitted when the resolved
// CycleGeneratorKind is NoneGenerator, or when
// InitialFactLandmarkGraphIsAcyclic holds in path-dependent mode — see
// ResolveGenerators.
type Driver struct {
	Handler    *ConstraintHandler
	Solver     lp.Solver
	Generators []lp.ConstraintGenerator
}

// NewDriver wires a handler, a solver already loaded via Setup, and the
// resolved constraint-generator chain (see ResolveGenerators) into a
// ready-to-call driver.
func NewDriver(handler *ConstraintHandler, solver lp.Solver, generators []lp.ConstraintGenerator) *Driver {
	return &Driver{Handler: handler, Solver: solver, Generators: generators}
}

// Evaluate computes the admissible heuristic value for state s, or
// DeadEnd. Idempotent: repeated calls on the same state with the same
// status produce the same value, since temporary constraints are always
// cleared before returning.
func (d *Driver) Evaluate(s collab.State) (int, error) {
	if d.Solver.HasTemporaryConstraints() {
		return 0, ErrTemporaryConstraintsPresent
	}

	dg, _, err := d.Handler.GetDALM(s)
	if err != nil {
		return 0, fmt.Errorf("heuristic: Driver.Evaluate: %w", err)
	}

	if d.Handler.DeadEndExists(s) {
		return DeadEnd, nil
	}

	h := DeadEnd
	signaledDeadEnd := false
	for _, gen := range d.Generators {
		signaled, genErr := gen.UpdateConstraints(dg, d.Solver)
		if genErr != nil {
			_ = d.Solver.ClearTemporaryConstraints()

			return 0, fmt.Errorf("heuristic: Driver.Evaluate: %w", genErr)
		}
		if signaled {
			signaledDeadEnd = true

			break
		}
	}

	if !signaledDeadEnd {
		if err = d.Solver.Solve(); err != nil {
			_ = d.Solver.ClearTemporaryConstraints()

			return 0, fmt.Errorf("heuristic: Driver.Evaluate: %w", err)
		}
		if d.Solver.HasOptimalSolution() {
			h = int(math.Ceil(d.Solver.ObjectiveValue() - roundingEpsilon))
		}
	}

	if err = d.Solver.ClearTemporaryConstraints(); err != nil {
		return 0, fmt.Errorf("heuristic: Driver.Evaluate: %w", err)
	}

	return h, nil
}
