package dalm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyclicplan/lmheuristic/dalm"
)

func TestAddNode_DeduplicatesByCanonicalSet(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{3, 1, 2})
	b := g.AddNode([]int{1, 2, 3, 1}) // same set, different order, with a duplicate
	assert.Equal(t, a, b)
	assert.Equal(t, 1, g.NumLandmarks())
	assert.Equal(t, []int{1, 2, 3}, g.Actions(a))
}

func TestAddNode_DistinctSets(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, g.NumLandmarks())
}

func TestAddNode_EmptyPanics(t *testing.T) {
	g := dalm.NewGraph()
	assert.Panics(t, func() { g.AddNode(nil) })
}

func TestActions_OutOfRangePanics(t *testing.T) {
	g := dalm.NewGraph()
	g.AddNode([]int{0})
	assert.Panics(t, func() { g.Actions(5) })
}

func TestStrongWeakOrderingCounters(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	c := g.AddNode([]int{2})

	g.AddWeakDependency(a, b)
	g.AddStrongDependency(b, c)
	assert.Equal(t, 2, g.NumOrderings())
	assert.Equal(t, 1, g.NumWeakOrderings())
	assert.Equal(t, 1, g.NumStrongOrderings())
	assert.Equal(t, g.NumOrderings(), g.NumStrongOrderings()+g.NumWeakOrderings())
}

func TestAddStrongDependency_UpgradesWeak(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})

	g.AddWeakDependency(a, b)
	assert.Equal(t, 1, g.NumWeakOrderings())

	g.AddStrongDependency(a, b)
	assert.Equal(t, 0, g.NumWeakOrderings())
	assert.Equal(t, 1, g.NumOrderings())

	kind, ok := g.OrderingType(a, b)
	assert.True(t, ok)
	assert.Equal(t, dalm.Strong, kind)
}

func TestAddDependency_NeverDuplicates(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})

	g.AddStrongDependency(a, b)
	g.AddStrongDependency(a, b)
	g.AddWeakDependency(a, b) // must not downgrade
	assert.Equal(t, 1, g.NumOrderings())
	kind, _ := g.OrderingType(a, b)
	assert.Equal(t, dalm.Strong, kind)
}

func TestOrderingType_Absent(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	_, ok := g.OrderingType(a, b)
	assert.False(t, ok)
}

func TestAdjacencyAndAdjacencyKeysOnly(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	c := g.AddNode([]int{2})
	g.AddWeakDependency(a, c)
	g.AddStrongDependency(a, b)

	adj := g.Adjacency()
	assert.True(t, adj[a][c])
	assert.False(t, adj[a][b]) // strong edges read false in the "is-weak" view

	keys := g.AdjacencyKeysOnly()
	assert.Equal(t, []int{b, c}, keys[a])
	assert.Empty(t, keys[b])
}

func TestDependencies(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	g.AddStrongDependency(a, b)
	assert.Equal(t, []int{b}, g.Dependencies(a))
}
