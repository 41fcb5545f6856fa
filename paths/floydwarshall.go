// All-pairs shortest paths and the derived diameter.
package paths

import (
	"math"

	"github.com/katalvlaran/graphein/core"
)

// FloydWarshall returns the V×V matrix of shortest distances between all
// vertex pairs. Negative weights are allowed; a negative cycle is a
// precondition violation and is not detected. dist[i][i] is always 0.
//
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(g *core.Graph) ([][]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	inf := math.Inf(1)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				continue
			}
			dist[i][j] = inf
		}
	}
	for i := 0; i < n; i++ {
		for _, j := range g.Neighbors(i) {
			if i == j {
				continue
			}
			w := 1.0
			if g.Weighted() {
				w, _ = g.Weight(i, j)
			}
			if w < dist[i][j] {
				dist[i][j] = w
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if nd := dik + dist[k][j]; nd < dist[i][j] {
					dist[i][j] = nd
				}
			}
		}
	}
	return dist, nil
}

// Diameter returns the largest pairwise shortest distance. ok is false
// when some ordered pair is unreachable (the graph is disconnected, or
// not strongly connected when directed); the returned value is then the
// largest finite distance seen.
//
// Complexity: O(V³).
func Diameter(g *core.Graph) (float64, bool, error) {
	dist, err := FloydWarshall(g)
	if err != nil {
		return 0, false, err
	}
	var diam float64
	ok := true
	for i := range dist {
		for j := range dist[i] {
			switch {
			case math.IsInf(dist[i][j], 1):
				ok = false
			case dist[i][j] > diam:
				diam = dist[i][j]
			}
		}
	}
	return diam, ok, nil
}
