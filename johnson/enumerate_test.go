package johnson_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyclicplan/lmheuristic/dalm"
	"github.com/cyclicplan/lmheuristic/johnson"
)

// normalize rotates a cycle so it starts at its lowest-indexed vertex,
// for order-independent comparison in tests.
func normalize(c []int) []int {
	minIdx := 0
	for i, v := range c {
		if v < c[minIdx] {
			minIdx = i
		}
	}
	out := make([]int, len(c))
	for i := range c {
		out[i] = c[(minIdx+i)%len(c)]
	}

	return out
}

func normalizedSet(cycles [][]int) []string {
	out := make([]string, len(cycles))
	for i, c := range cycles {
		n := normalize(c)
		s := ""
		for _, v := range n {
			s += string(rune('0' + v))
		}
		out[i] = s
	}
	sort.Strings(out)

	return out
}

func TestEnumerateCycles_TwoCycle(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	g.AddNode([]int{2}) // isolated node, no edges
	g.AddStrongDependency(a, b)
	g.AddStrongDependency(b, a)

	cycles := johnson.EnumerateCycles(g)
	require := assert.New(t)
	require.Len(cycles, 1)
	require.ElementsMatch([]int{0, 1}, cycles[0])
}

func TestEnumerateCycles_ThreeCycle(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	c := g.AddNode([]int{2})
	g.AddWeakDependency(a, b)
	g.AddWeakDependency(b, c)
	g.AddWeakDependency(c, a)

	cycles := johnson.EnumerateCycles(g)
	assert.Len(t, cycles, 1)
	assert.Len(t, cycles[0], 3)
}

func TestEnumerateCycles_NoCycleInDAG(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	c := g.AddNode([]int{2})
	g.AddStrongDependency(a, b)
	g.AddStrongDependency(b, c)

	assert.Empty(t, johnson.EnumerateCycles(g))
}

func TestEnumerateCycles_EmptyGraph(t *testing.T) {
	g := dalm.NewGraph()
	assert.Empty(t, johnson.EnumerateCycles(g))
}

// TestEnumerateCycles_CompleteTriangle exercises exhaustive, duplicate-free
// enumeration over the complete digraph on 3 nodes: three elementary
// 2-cycles plus two elementary 3-cycles (the two opposite traversal
// directions of the triangle) is the well-known count for K3.
func TestEnumerateCycles_CompleteTriangle(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	c := g.AddNode([]int{2})
	for _, pair := range [][2]int{{a, b}, {b, a}, {b, c}, {c, b}, {a, c}, {c, a}} {
		g.AddStrongDependency(pair[0], pair[1])
	}

	cycles := johnson.EnumerateCycles(g)
	assert.Len(t, cycles, 5)

	byLen := map[int]int{}
	for _, c := range cycles {
		byLen[len(c)]++
	}
	assert.Equal(t, 3, byLen[2])
	assert.Equal(t, 2, byLen[3])

	set := normalizedSet(cycles)
	for i := 1; i < len(set); i++ {
		assert.NotEqual(t, set[i-1], set[i], "duplicate cycle emitted")
	}
}

func TestEnumerateCycles_Deterministic(t *testing.T) {
	g := dalm.NewGraph()
	a := g.AddNode([]int{0})
	b := g.AddNode([]int{1})
	c := g.AddNode([]int{2})
	for _, pair := range [][2]int{{a, b}, {b, a}, {b, c}, {c, b}, {a, c}, {c, a}} {
		g.AddStrongDependency(pair[0], pair[1])
	}

	first := johnson.EnumerateCycles(g)
	second := johnson.EnumerateCycles(g)
	assert.Equal(t, first, second)
}
