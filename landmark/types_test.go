package landmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclicplan/lmheuristic/collab"
	"github.com/cyclicplan/lmheuristic/landmark"
)

func TestEdgeKindOrdering(t *testing.T) {
	assert.True(t, landmark.Necessary > landmark.GreedyNecessary)
	assert.True(t, landmark.GreedyNecessary > landmark.Natural)
	assert.True(t, landmark.Natural > landmark.Reasonable)
	assert.True(t, landmark.Reasonable > landmark.ObedientReasonable)

	assert.True(t, landmark.GreedyNecessary.IsStrong())
	assert.True(t, landmark.Necessary.IsStrong())
	assert.False(t, landmark.Natural.IsStrong())

	assert.True(t, landmark.Reasonable.IsWeak())
	assert.True(t, landmark.ObedientReasonable.IsWeak())
	assert.False(t, landmark.Natural.IsWeak())
}

func TestEdgeKindString(t *testing.T) {
	assert.Equal(t, "necessary", landmark.Necessary.String())
	assert.Equal(t, "obedient-reasonable", landmark.ObedientReasonable.String())
}

func TestLandmarkIsTrueInState_Conjunctive(t *testing.T) {
	s := fakeState{true, true}
	l := &landmark.Landmark{Facts: []collab.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 1}}}
	assert.True(t, l.IsTrueInState(s))

	s2 := fakeState{true, false}
	assert.False(t, l.IsTrueInState(s2))
}

func TestLandmarkIsTrueInState_Disjunctive(t *testing.T) {
	s := fakeState{false, true}
	l := &landmark.Landmark{Disjunctive: true, Facts: []collab.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 1}}}
	assert.True(t, l.IsTrueInState(s))

	s2 := fakeState{false, false}
	assert.False(t, l.IsTrueInState(s2))
}

func TestLandmarkIsTrueInState_NoFacts(t *testing.T) {
	l := &landmark.Landmark{}
	assert.False(t, l.IsTrueInState(fakeState{}))
}

func TestGraph_AddLandmarkSequentialID(t *testing.T) {
	g := landmark.NewGraph()
	require.NoError(t, g.AddLandmark(&landmark.Landmark{ID: 0}))
	require.NoError(t, g.AddLandmark(&landmark.Landmark{ID: 1}))
	assert.Equal(t, 2, g.NumLandmarks())

	err := g.AddLandmark(&landmark.Landmark{ID: 5})
	assert.ErrorIs(t, err, landmark.ErrDuplicateID)

	err = g.AddLandmark(nil)
	assert.ErrorIs(t, err, landmark.ErrNilLandmark)
}

func TestGraph_LandmarkPanicsOutOfRange(t *testing.T) {
	g := landmark.NewGraph()
	require.NoError(t, g.AddLandmark(&landmark.Landmark{ID: 0}))
	assert.Panics(t, func() { g.Landmark(1) })
}

func TestGraph_EdgesAndIsAcyclic(t *testing.T) {
	g := landmark.NewGraph()
	for i := 0; i < 3; i++ {
		require.NoError(t, g.AddLandmark(&landmark.Landmark{ID: i}))
	}
	g.AddEdge(0, 1, landmark.Natural)
	g.AddEdge(1, 2, landmark.Reasonable)
	assert.True(t, g.IsAcyclic())

	assert.Equal(t, []landmark.Edge{{From: 0, To: 1, Kind: landmark.Natural}}, g.Children(0))
	assert.Equal(t, []int{0}, g.Parents(1))

	g.AddEdge(2, 0, landmark.Necessary)
	assert.False(t, g.IsAcyclic())
}

func TestGraph_IsAcyclicEmpty(t *testing.T) {
	g := landmark.NewGraph()
	assert.True(t, g.IsAcyclic())
}

type fakeState [2]bool

func (s fakeState) ID() collab.StateID { return 0 }

func (s fakeState) Holds(f collab.Fact) bool {
	if f.Var < 0 || f.Var > 1 {
		return false
	}

	return s[f.Var] && f.Val == 1
}
