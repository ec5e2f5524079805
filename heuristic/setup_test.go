package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/dalm"
	"github.com/cyclicplan/lmheuristic/heuristic"
	"github.com/cyclicplan/lmheuristic/internal/testutil"
	"github.com/cyclicplan/lmheuristic/landmark"
	"github.com/cyclicplan/lmheuristic/lp"
)

func twoOpTask() *testutil.FakeTask {
	return &testutil.FakeTask{
		Ops: []collab.Operator{
			{ID: 0, Cost: 3},
			{ID: 1, Cost: 5},
		},
	}
}

func TestBuildVariables(t *testing.T) {
	task := twoOpTask()
	vars := heuristic.BuildVariables(task, false)
	require.Len(t, vars, 2)
	assert.Equal(t, "op_0", vars[0].Name)
	assert.Equal(t, float64(3), vars[0].Cost)
	assert.False(t, vars[0].Integer)
	assert.Equal(t, "op_1", vars[1].Name)
	assert.Equal(t, float64(5), vars[1].Cost)
}

func TestBuildVariables_Integer(t *testing.T) {
	vars := heuristic.BuildVariables(twoOpTask(), true)
	assert.True(t, vars[0].Integer)
	assert.True(t, vars[1].Integer)
}

func TestSetup_LoadsVariablesOnly(t *testing.T) {
	task := &testutil.FakeTask{Ops: []collab.Operator{{ID: 0, Cost: 1}, {ID: 1, Cost: 1}}}

	solver := testutil.NewBruteForceSolver(2)
	require.NoError(t, heuristic.Setup(solver, task, heuristic.Options{}))

	// The loaded problem has no constraint rows: the trivial all-zero
	// assignment is optimal until a generator adds the landmark rows.
	require.NoError(t, solver.Solve())
	require.True(t, solver.HasOptimalSolution())
	assert.Equal(t, float64(0), solver.ObjectiveValue())

	g := dalm.NewGraph()
	g.AddNode([]int{0})
	g.AddNode([]int{1})
	_, err := lp.LandmarkGenerator{}.UpdateConstraints(g, solver)
	require.NoError(t, err)
	require.NoError(t, solver.Solve())
	assert.Equal(t, float64(2), solver.ObjectiveValue()) // x0>=1, x1>=1, cost 1 each
}

func buildAcyclicFG(t *testing.T) *landmark.Graph {
	t.Helper()
	fg := landmark.NewGraph()
	require.NoError(t, fg.AddLandmark(&landmark.Landmark{ID: 0, Facts: []collab.Fact{{Var: 0, Val: 1}}, FirstAchievers: []int{0}, PossibleAchievers: []int{0}}))
	require.NoError(t, fg.AddLandmark(&landmark.Landmark{ID: 1, Facts: []collab.Fact{{Var: 1, Val: 1}}, FirstAchievers: []int{1}, PossibleAchievers: []int{1}}))
	fg.AddEdge(0, 1, landmark.Natural)

	return fg
}

func buildCyclicFG(t *testing.T) *landmark.Graph {
	t.Helper()
	fg := landmark.NewGraph()
	require.NoError(t, fg.AddLandmark(&landmark.Landmark{ID: 0, Facts: []collab.Fact{{Var: 0, Val: 1}}, PossibleAchievers: []int{0}}))
	require.NoError(t, fg.AddLandmark(&landmark.Landmark{ID: 1, Facts: []collab.Fact{{Var: 1, Val: 1}}, PossibleAchievers: []int{1}}))
	fg.AddEdge(0, 1, landmark.Natural)
	fg.AddEdge(1, 0, landmark.Reasonable)

	return fg
}

func TestResolveGenerators_None(t *testing.T) {
	h := heuristic.NewConstraintHandler()
	opts := heuristic.Options{CycleGenerator: heuristic.NoneGenerator}
	gens := heuristic.ResolveGenerators(h, opts)
	require.Len(t, gens, 1)
	_, ok := gens[0].(lp.LandmarkGenerator)
	assert.True(t, ok)
}

func TestResolveGenerators_AcyclicFastPath(t *testing.T) {
	fg := buildAcyclicFG(t)
	task := &testutil.FakeTask{Ops: []collab.Operator{{ID: 0, Cost: 1}, {ID: 1, Cost: 1}}, Initial: testutil.NewFakeState(0)}
	factory := testutil.NewFakeFactory(fg)

	h := heuristic.NewConstraintHandler()
	opts := heuristic.Options{PathDependent: true, CycleGenerator: heuristic.JohnsonGen}
	require.NoError(t, h.Initialize(factory, task, opts))
	_, _, err := h.GetDALM(task.Initial)
	require.NoError(t, err)

	gens := heuristic.ResolveGenerators(h, opts)
	require.Len(t, gens, 1) // cycle generator discarded, base generator kept
	_, ok := gens[0].(lp.LandmarkGenerator)
	assert.True(t, ok)
}

func TestResolveGenerators_CyclicGraphSelectsJohnson(t *testing.T) {
	fg := buildCyclicFG(t)
	task := &testutil.FakeTask{Ops: []collab.Operator{{ID: 0, Cost: 1}, {ID: 1, Cost: 1}}, Initial: testutil.NewFakeState(0)}
	factory := testutil.NewFakeFactory(fg)

	h := heuristic.NewConstraintHandler()
	opts := heuristic.Options{PathDependent: true, CycleGenerator: heuristic.JohnsonGen, Strong: true}
	require.NoError(t, h.Initialize(factory, task, opts))
	_, _, err := h.GetDALM(task.Initial)
	require.NoError(t, err)

	gens := heuristic.ResolveGenerators(h, opts)
	require.Len(t, gens, 2)
	jg, ok := gens[1].(lp.JohnsonGenerator)
	require.True(t, ok)
	assert.True(t, jg.Strong)
}

func TestResolveGenerators_FloydWarshallAndDepthFirstModes(t *testing.T) {
	fg := buildCyclicFG(t)
	task := &testutil.FakeTask{Ops: []collab.Operator{{ID: 0, Cost: 1}, {ID: 1, Cost: 1}}, Initial: testutil.NewFakeState(0)}

	for _, kind := range []heuristic.CycleGeneratorKind{heuristic.FloydWarshallGen, heuristic.DepthFirstGen} {
		factory := testutil.NewFakeFactory(fg)
		h := heuristic.NewConstraintHandler()
		opts := heuristic.Options{PathDependent: true, CycleGenerator: kind}
		require.NoError(t, h.Initialize(factory, task, opts))
		_, _, err := h.GetDALM(task.Initial)
		require.NoError(t, err)

		gens := heuristic.ResolveGenerators(h, opts)
		assert.Len(t, gens, 2)
	}
}
