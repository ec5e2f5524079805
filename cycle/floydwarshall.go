package cycle

import (
	"math"

	"github.com/cyclicplan/lmheuristic/dalm"
)

// FloydWarshallOracle finds a violated cycle by running an in-place
// all-pairs closure over minimum cycle weight: the deterministic
// k -> i -> j relaxation of Floyd-Warshall. dist[i][j] holds the
// cheapest weight of a walk i -> j counting every node after i exactly
// once (the entry for a direct edge is weights[j]), so dist[i][i]
// closes to the full cycle weight and concatenation needs no
// correction term.
//
// Complexity: O(n^3) time, O(n^2) space.
type FloydWarshallOracle struct{}

// FindCycle implements Oracle.
func (FloydWarshallOracle) FindCycle(g *dalm.Graph, weights []float64, ignoreWeak bool) ([]int, error) {
	n := g.NumLandmarks()
	if n == 0 {
		return nil, nil
	}

	inf := math.Inf(1)
	dist := make([][]float64, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			dist[i][j] = inf
			next[i][j] = -1
		}
	}

	for u := 0; u < n; u++ {
		for _, e := range g.Children(u) {
			if ignoreWeak && e.Kind == dalm.Weak {
				continue
			}
			w := weights[e.To]
			if w < dist[u][e.To] {
				dist[u][e.To] = w
				next[u][e.To] = e.To
			}
		}
	}

	// Fixed k -> i -> j loop order keeps the closure deterministic.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if math.IsInf(dist[k][j], 1) {
					continue
				}
				cand := dist[i][k] + dist[k][j]
				if cand < dist[i][j] {
					dist[i][j] = cand
					next[i][j] = next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 1-epsilon {
			if c := reconstruct(next, i); c != nil {
				return c, nil
			}
		}
	}

	return nil, nil
}

// reconstruct walks next-hop pointers from i back to i, producing the
// open cycle node sequence [i, ...] without a repeated trailing i.
// A walk revisiting a node cannot be a simple cycle; such walks are
// rejected so the caller moves on to the next diagonal entry.
func reconstruct(next [][]int, i int) []int {
	path := []int{i}
	cur := i
	for len(path) <= len(next) {
		nxt := next[cur][i]
		if nxt == -1 {
			return nil
		}
		if nxt == i {
			return path
		}
		cur = nxt
		path = append(path, cur)
	}

	return nil
}
