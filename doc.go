// Package lmheuristic implements the cyclic landmark heuristic core of a
// classical planner: an admissible lower bound on the cost to reach a
// goal state, computed by formulating an LP/MIP over operator counts
// whose constraints encode disjunctive action landmarks and cycles in a
// landmark ordering graph.
//
// The core is organized as one package per pipeline stage:
//
//	landmark/       — ordering taxonomy & the fact-landmark graph (FG)
//	dalm/           — disjunctive action landmark graph (DG) builder
//	status/         — per-state landmark status managers (LAMA, multi-path, consistent)
//	cycle/          — cycle oracles (Floyd-Warshall, depth-first)
//	johnson/        — elementary cycle enumeration
//	lp/             — LP/MIP constraint generation
//	heuristic/      — constraint handler orchestrator and the per-state driver
//	collab/         — external collaborator interfaces (task, state)
//	internal/bitset — the PerStateBitset primitive used by status managers
//
// Control flow per state: heuristic.Driver.Evaluate asks
// heuristic.ConstraintHandler for the current disjunctive action
// landmark graph, runs the configured lp.ConstraintGenerators against
// it, solves, and rounds the objective up to an admissible integer
// bound. Status managers are notified separately at state transitions
// via ConstraintHandler.NotifyTransition.
//
// The LP/MIP solver, the fact-landmark factory, the planning task
// abstraction, and the search engine are external collaborators; this
// module only describes the interfaces it consumes from them (package
// collab and the Factory/Solver interfaces in landmark and lp).
package lmheuristic
