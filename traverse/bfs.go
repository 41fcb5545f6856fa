// Breadth-first search over a core.Graph.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/graphein/core"
)

// BFS runs breadth-first search on g from root, visiting every reachable
// vertex exactly once in increasing distance from root. Result.Depth holds
// the unweighted shortest-path distance.
//
// Complexity: O(V+E) time, O(V) memory.
func BFS(g *core.Graph, root int, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if root < 0 || root >= g.VertexCount() {
		return nil, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	res := newResult(g.VertexCount(), false)
	res.Visited[root] = true
	res.Depth[root] = 0
	res.Disc[root] = 0
	clock := 1
	queue := make([]int, 0, g.VertexCount())
	queue = append(queue, root)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, v)
		if err := o.OnVisit(v, res.Depth[v]); err != nil {
			return nil, fmt.Errorf("traverse: OnVisit error at %d: %w", v, err)
		}
		next := res.Depth[v] + 1
		if o.MaxDepth > 0 && next > o.MaxDepth {
			continue
		}
		for _, n := range g.Neighbors(v) {
			if res.Visited[n] || !o.FilterNeighbor(v, n) {
				continue
			}
			res.Visited[n] = true
			res.Depth[n] = next
			res.Parent[n] = v
			res.Disc[n] = clock
			clock++
			queue = append(queue, n)
		}
	}
	return res, nil
}
