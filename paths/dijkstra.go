// Dijkstra single-source shortest paths with a lazy-decrease-key heap.
package paths

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/graphein/core"
)

// Dijkstra computes shortest distances from source to every vertex of g,
// or — when targets is non-empty — only until each target is finalized.
// Weights must be non-negative (checked up front); on an unweighted graph
// every edge counts 1.
//
// Complexity: O((V+E) log V).
func Dijkstra(g *core.Graph, source int, targets []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}
	for _, t := range targets {
		if t < 0 || t >= n {
			return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, t)
		}
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g.Weighted() {
		for _, e := range g.Edges() {
			w, err := g.Weight(e.From, e.To)
			if err != nil {
				return nil, err
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: edge %d-%d weight=%g", ErrNegativeWeight, e.From, e.To, w)
			}
		}
	}

	r := &runner{
		g:       g,
		cfg:     cfg,
		res:     &Result{Source: source, Dist: make([]float64, n), Parent: make([]int, n)},
		settled: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		r.res.Dist[i] = math.Inf(1)
		r.res.Parent[i] = -1
	}
	r.res.Dist[source] = 0
	if len(targets) > 0 {
		r.pending = make([]bool, n)
		for _, t := range targets {
			if !r.pending[t] {
				r.pending[t] = true
				r.remaining++
			}
		}
	}
	r.run(source)
	return r.res, nil
}

// runner holds the mutable state of one Dijkstra sweep.
type runner struct {
	g   *core.Graph
	cfg Options
	res *Result

	settled []bool
	pq      nodePQ

	// target bookkeeping; pending is nil for a full sweep
	pending   []bool
	remaining int
}

func (r *runner) run(source int) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{v: source, dist: 0})
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.v
		if r.settled[u] {
			continue // stale lazy entry
		}
		if item.dist > r.cfg.MaxDistance {
			break
		}
		r.settled[u] = true
		if r.pending != nil && r.pending[u] {
			r.pending[u] = false
			if r.remaining--; r.remaining == 0 {
				return // every target finalized
			}
		}
		r.relax(u)
	}
}

// relax pushes improved distances for the out-neighbors of u.
func (r *runner) relax(u int) {
	for _, v := range r.g.Neighbors(u) {
		w := 1.0
		if r.g.Weighted() {
			w, _ = r.g.Weight(u, v) // v comes from the adjacency, edge exists
		}
		nd := r.res.Dist[u] + w
		if nd >= r.res.Dist[v] || nd > r.cfg.MaxDistance {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Parent[v] = u
		heap.Push(&r.pq, nodeItem{v: v, dist: nd})
	}
}

// nodeItem is one heap entry; duplicates for a vertex may coexist and the
// stale ones are discarded when popped.
type nodeItem struct {
	v    int
	dist float64
}

type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
