// Cycle and path discovery, girth, and odd girth.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/graphein/core"
)

// FindCycle returns the vertices of any one cycle in g, in cycle order,
// or (nil, false) when g is acyclic. Undirected graphs use DFS back edges
// (ignoring the tree parent); directed graphs use gray-path detection.
//
// The result is used by the layout engine as a leading-cycle fallback.
// Complexity: O(V+E).
func FindCycle(g *core.Graph) ([]int, bool) {
	if g == nil || g.VertexCount() == 0 {
		return nil, false
	}
	n := g.VertexCount()
	parent := make([]int, n)
	state := make([]int, n) // 0 white, 1 gray, 2 black
	for i := range parent {
		parent[i] = -1
	}
	directed := g.Directed()
	for root := 0; root < n; root++ {
		if state[root] != 0 {
			continue
		}
		if cyc := cycleFrom(g, root, parent, state, directed); cyc != nil {
			return cyc, true
		}
	}
	return nil, false
}

// cycleFrom runs one DFS tree looking for a back edge; on hit it unwinds
// the parent chain into an explicit cycle.
func cycleFrom(g *core.Graph, root int, parent, state []int, directed bool) []int {
	type frame struct{ v, next int }
	stack := []frame{{v: root}}
	state[root] = 1
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := g.Neighbors(top.v)
		if top.next >= len(nbrs) {
			state[top.v] = 2
			stack = stack[:len(stack)-1]
			continue
		}
		n := nbrs[top.next]
		top.next++
		if state[n] == 0 {
			parent[n] = top.v
			state[n] = 1
			stack = append(stack, frame{v: n})
			continue
		}
		// For undirected graphs the symmetric entry toward the tree parent
		// is not a cycle; for directed graphs only gray targets close one.
		if !directed && n == parent[top.v] {
			continue
		}
		if directed && state[n] != 1 {
			continue
		}
		// unwind top.v → ... → n
		cyc := []int{n}
		for v := top.v; v != n; v = parent[v] {
			cyc = append(cyc, v)
		}
		// reverse into cycle order n, ..., top.v
		for i, j := 1, len(cyc)-1; i < j; i, j = i+1, j-1 {
			cyc[i], cyc[j] = cyc[j], cyc[i]
		}
		return cyc
	}
	return nil
}

// FindPath returns some path from vertex i to vertex j (BFS, so a shortest
// unweighted path). Returns ErrNoPath when j is unreachable from i.
// Complexity: O(V+E).
func FindPath(g *core.Graph, i, j int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if i < 0 || i >= g.VertexCount() || j < 0 || j >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d or %d", ErrRootNotFound, i, j)
	}
	res, err := BFS(g, i)
	if err != nil {
		return nil, err
	}
	return res.PathTo(j)
}

// Girth returns the length of the shortest cycle of g and true, or
// (0, false) when g is acyclic. Directed input is measured on the
// underlying undirected graph.
//
// One BFS per root: a non-tree edge (u,v) seen from root closes a cycle of
// length depth(u)+depth(v)+1; the minimum over all roots is exact.
// Complexity: O(V·(V+E)).
func Girth(g *core.Graph) (int, bool) {
	return girth(g, false)
}

// OddGirth returns the length of the shortest odd cycle and true, or
// (0, false) when g has none (i.e. is bipartite).
// Complexity: O(V·(V+E)).
func OddGirth(g *core.Graph) (int, bool) {
	return girth(g, true)
}

func girth(g *core.Graph, oddOnly bool) (int, bool) {
	if g == nil || g.VertexCount() == 0 {
		return 0, false
	}
	u := g
	if g.Directed() {
		u = g.Underlying()
	}
	n := u.VertexCount()
	best := -1
	depth := make([]int, n)
	parent := make([]int, n)
	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		for i := range depth {
			depth[i] = -1
			parent[i] = -1
		}
		depth[root] = 0
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, w := range u.Neighbors(v) {
				if w == v {
					continue // ignore loops
				}
				if depth[w] == -1 {
					depth[w] = depth[v] + 1
					parent[w] = v
					queue = append(queue, w)
					continue
				}
				if w == parent[v] {
					continue
				}
				cyc := depth[v] + depth[w] + 1
				if oddOnly && cyc%2 == 0 {
					continue
				}
				if best == -1 || cyc < best {
					best = cyc
				}
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
