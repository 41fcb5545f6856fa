// Iterative depth-first search with discovery times and low-link values.
package traverse

import (
	"fmt"

	"github.com/katalvlaran/graphein/core"
)

// frame is one explicit DFS stack entry: a vertex and a cursor into its
// adjacency list.
type frame struct {
	v    int
	next int // index of the next neighbor to examine
}

// DFS runs depth-first search on g from root, visiting every reachable
// vertex exactly once. Neighbor order follows adjacency insertion order,
// so the traversal is deterministic for a fixed construction sequence.
//
// The result carries discovery times and low-link values; connectivity
// consumers (cut vertices, blocks, SCC) re-run their own specialized DFS
// rather than reusing this one, since they need edge/node stacks.
//
// Complexity: O(V+E) time, O(V) memory.
func DFS(g *core.Graph, root int, opts ...Option) (*Result, error) {
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

	w := &dfsWalker{g: g, opts: o, res: newResult(g.VertexCount(), true)}
	if err := w.run(root); err != nil {
		return nil, err
	}
	return w.res, nil
}

// dfsWalker encapsulates mutable DFS state for one call.
type dfsWalker struct {
	g     *core.Graph
	opts  Options
	res   *Result
	clock int
	stack []frame
}

// discover marks v visited at the given depth under parent and invokes the
// visit hook.
func (w *dfsWalker) discover(v, parent, depth int) error {
	w.res.Visited[v] = true
	w.res.Parent[v] = parent
	w.res.Depth[v] = depth
	w.res.Disc[v] = w.clock
	w.res.Low[v] = w.clock
	w.clock++
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %d: %w", v, err)
	}
	return nil
}

// run drives the explicit-stack DFS from root.
func (w *dfsWalker) run(root int) error {
	if err := w.discover(root, -1, 0); err != nil {
		return err
	}
	w.stack = append(w.stack, frame{v: root})
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		nbrs := w.g.Neighbors(top.v)
		if top.next >= len(nbrs) {
			// post-order: fold low-link into the parent
			w.stack = w.stack[:len(w.stack)-1]
			if p := w.res.Parent[top.v]; p != -1 {
				if w.res.Low[top.v] < w.res.Low[p] {
					w.res.Low[p] = w.res.Low[top.v]
				}
			}
			continue
		}
		n := nbrs[top.next]
		top.next++
		if !w.opts.FilterNeighbor(top.v, n) {
			continue
		}
		if w.res.Visited[n] {
			// back (or cross) edge: only back edges to ancestors matter for
			// low-link on undirected graphs; skipping the tree parent keeps
			// the symmetric entry from faking a cycle.
			if n != w.res.Parent[top.v] && w.res.Disc[n] < w.res.Low[top.v] {
				w.res.Low[top.v] = w.res.Disc[n]
			}
			continue
		}
		depth := w.res.Depth[top.v] + 1
		if w.opts.MaxDepth > 0 && depth > w.opts.MaxDepth {
			continue
		}
		if err := w.discover(n, top.v, depth); err != nil {
			return err
		}
		w.stack = append(w.stack, frame{v: n})
	}
	return nil
}

// buildOptions folds functional options and surfaces recorded violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}
