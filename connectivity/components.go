// Package connectivity: connected components and connectivity predicates.
package connectivity

import (
	"errors"

	"github.com/katalvlaran/graphein/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("connectivity: graph is nil")

// undirectedView returns g itself, or its underlying undirected copy when
// g is directed, so component walks ignore edge orientation.
func undirectedView(g *core.Graph) *core.Graph {
	if g.Directed() {
		return g.Underlying()
	}
	return g
}

// Components returns the connected components of g (ignoring direction),
// each a sorted-by-discovery list of vertex indices. Component order
// follows the smallest contained index.
// Complexity: O(V+E).
func Components(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	u := undirectedView(g)
	n := u.VertexCount()
	visited := make([]bool, n)
	var comps [][]int
	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		queue = append(queue[:0], root)
		comp := []int{root}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range u.Neighbors(v) {
				if !visited[w] {
					visited[w] = true
					comp = append(comp, w)
					queue = append(queue, w)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

// IsConnected reports whether g has at most one connected component
// (ignoring direction). The empty graph counts as connected.
// Complexity: O(V+E).
func IsConnected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}
	return len(comps) <= 1, nil
}

// IsTree reports whether g is an undirected, connected, acyclic graph.
// Directed graphs are never trees here (use the underlying graph first).
// Complexity: O(V+E).
func IsTree(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() || g.VertexCount() == 0 {
		return false, nil
	}
	connected, err := IsConnected(g)
	if err != nil {
		return false, err
	}
	return connected && g.EdgeCount() == g.VertexCount()-1, nil
}

// IsForest reports whether every component of an undirected g is a tree.
// Complexity: O(V+E).
func IsForest(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, nil
	}
	comps, err := Components(g)
	if err != nil {
		return false, err
	}
	// acyclic iff every component has exactly |C|-1 edges
	for _, comp := range comps {
		sub, err := g.InducedSubgraph(comp)
		if err != nil {
			return false, err
		}
		if sub.EdgeCount() != len(comp)-1 {
			return false, nil
		}
	}
	return true, nil
}
