package lp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyclicplan/lmheuristic/dalm"
	"github.com/cyclicplan/lmheuristic/lp"
)

func buildThreeNodeChain(t *testing.T) *dalm.Graph {
	t.Helper()
	g := dalm.NewGraph()
	g.AddNode([]int{0})
	g.AddNode([]int{1})
	g.AddNode([]int{2})

	return g
}

func TestBuildBaseConstraints(t *testing.T) {
	g := buildThreeNodeChain(t)
	cons := lp.BuildBaseConstraints(g)
	assert.Len(t, cons, 3)
	for i, c := range cons {
		assert.Equal(t, float64(1), c.RHS)
		assert.Equal(t, map[int]float64{i: 1}, c.Coeffs)
	}
}

func TestBuildBaseConstraints_SharedAchiever(t *testing.T) {
	g := dalm.NewGraph()
	g.AddNode([]int{0, 1})
	cons := lp.BuildBaseConstraints(g)
	assert.Equal(t, map[int]float64{0: 1, 1: 1}, cons[0].Coeffs)
}

func TestBuildCycleConstraint_WeakOnlyDroppedInStrongMode(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	g.AddWeakDependency(a, b)
	g.AddWeakDependency(b, a)

	_, ok := lp.BuildCycleConstraint(g, []int{a, b}, true)
	assert.False(t, ok, "cycle with zero eligible edges must contribute no constraint")
}

func TestBuildCycleConstraint_WeakAllowedInWeakMode(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	g.AddWeakDependency(a, b)
	g.AddWeakDependency(b, a)

	c, ok := lp.BuildCycleConstraint(g, []int{a, b}, false)
	assert.True(t, ok)
	assert.Equal(t, float64(3), c.RHS) // m = 2 eligible edges, RHS = m+1
	assert.Equal(t, map[int]float64{0: 1, 1: 1}, c.Coeffs)
}

func TestBuildCycleConstraint_MixedStrongWeak(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	g.AddStrongDependency(a, b)
	g.AddWeakDependency(b, a)

	c, ok := lp.BuildCycleConstraint(g, []int{a, b}, true)
	assert.True(t, ok)
	assert.Equal(t, float64(2), c.RHS) // only a->b eligible, m=1
	assert.Equal(t, map[int]float64{1: 1}, c.Coeffs)
}

func TestBuildCycleConstraint_RepeatedAchieverSummed(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	c := g.AddNode([]int{1, 2}) // shares achiever 1 with b
	g.AddStrongDependency(a, b)
	g.AddStrongDependency(b, c)
	g.AddStrongDependency(c, a)

	con, ok := lp.BuildCycleConstraint(g, []int{a, b, c}, true)
	assert.True(t, ok)
	assert.Equal(t, float64(4), con.RHS) // m = 3
	// operator 1 is the achiever of both b (from edge a->b) and c (from
	// edge b->c); a (from edge c->a) contributes operator 0.
	assert.Equal(t, map[int]float64{0: 1, 1: 2, 2: 1}, con.Coeffs)
}

func TestBuildCycleConstraint_EmptyCycle(t *testing.T) {
	g := buildThreeNodeChain(t)
	_, ok := lp.BuildCycleConstraint(g, nil, false)
	assert.False(t, ok)
}

func TestBuildAllCycleConstraints_DropsIneligible(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	g.AddWeakDependency(a, b)
	g.AddWeakDependency(b, a)

	cons := lp.BuildAllCycleConstraints(g, [][]int{{a, b}}, true)
	assert.Empty(t, cons)

	cons = lp.BuildAllCycleConstraints(g, [][]int{{a, b}}, false)
	assert.Len(t, cons, 1)
}

func TestLandmarkWeights(t *testing.T) {
	g := dalm.NewGraph()
	g.AddNode([]int{0, 1})
	g.AddNode([]int{2})

	w := lp.LandmarkWeights(g, []float64{0.3, 0.4, 0.5})
	assert.Equal(t, []float64{0.7, 0.5}, w)
}
