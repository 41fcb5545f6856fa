// Edmonds blossom maximum matching.
package matching

import (
	"errors"
	"sort"

	"github.com/katalvlaran/graphein/core"
)

// Sentinel errors for matching.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrDirected is returned when the input graph is directed.
	ErrDirected = errors.New("matching: graph must be undirected")
)

// Maximum returns a maximum-cardinality matching of the undirected graph g
// as a list of vertex-disjoint edges (From < To), sorted by From.
// Edge weights, if any, are ignored.
//
// Starting from the empty matching, each round searches for an augmenting
// path from an exposed vertex with an alternating-tree BFS, contracting
// every blossom it meets; the matching grows by one edge per round until
// no augmenting path exists, which certifies maximality (Berge).
//
// Complexity: O(V·E) per the package documentation.
func Maximum(g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirected
	}
	m := newMaximizer(g)
	for v := 0; v < m.n; v++ {
		if m.match[v] == -1 {
			if u := m.findAugmentingPath(v); u != -1 {
				m.augment(u)
			}
		}
	}
	return m.edges(), nil
}

// Maximal returns a greedy maximal matching: edges are scanned in
// deterministic order and taken whenever both endpoints are still free.
// Complexity: O(V+E).
func Maximal(g *core.Graph) ([]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirected
	}
	taken := make([]bool, g.VertexCount())
	var out []core.Edge
	for _, e := range g.Edges() {
		if e.From == e.To || taken[e.From] || taken[e.To] {
			continue
		}
		taken[e.From] = true
		taken[e.To] = true
		out = append(out, e)
	}
	return out, nil
}

// maximizer holds the state of one Maximum run. base implements blossom
// contraction as index relabeling: base[v] is the base vertex of the
// blossom currently containing v (itself when uncontracted).
type maximizer struct {
	g     *core.Graph
	n     int
	match []int // match[v] = partner, -1 exposed
	p     []int // alternating-tree parent (on even vertices' mates)
	base  []int
	used  []bool // vertex is in the current alternating tree (even level)
	blos  []bool // scratch for blossom marking
	queue []int
}

func newMaximizer(g *core.Graph) *maximizer {
	n := g.VertexCount()
	m := &maximizer{
		g:     g,
		n:     n,
		match: make([]int, n),
		p:     make([]int, n),
		base:  make([]int, n),
		used:  make([]bool, n),
		blos:  make([]bool, n),
	}
	for i := range m.match {
		m.match[i] = -1
	}
	return m
}

// findAugmentingPath grows an alternating tree from the exposed root and
// returns the exposed vertex ending an augmenting path, or -1.
func (m *maximizer) findAugmentingPath(root int) int {
	for i := 0; i < m.n; i++ {
		m.used[i] = false
		m.p[i] = -1
		m.base[i] = i
	}
	m.used[root] = true
	m.queue = m.queue[:0]
	m.queue = append(m.queue, root)

	for len(m.queue) > 0 {
		v := m.queue[0]
		m.queue = m.queue[1:]
		for _, to := range m.g.Neighbors(v) {
			// edges inside one blossom and the matched edge add nothing
			if m.base[v] == m.base[to] || m.match[v] == to {
				continue
			}
			if to == root || (m.match[to] != -1 && m.p[m.match[to]] != -1) {
				// odd cycle: contract the blossom around its base
				m.contractBlossom(v, to)
				continue
			}
			if m.p[to] != -1 {
				continue // odd vertex already in the tree
			}
			m.p[to] = v
			if m.match[to] == -1 {
				return to // exposed: augmenting path found
			}
			// extend the tree through the matched edge
			m.used[m.match[to]] = true
			m.queue = append(m.queue, m.match[to])
		}
	}
	return -1
}

// contractBlossom relabels every vertex on the v..base..to cycle to the
// blossom base (the lowest common ancestor in the tree) and re-enqueues
// members that now become even.
func (m *maximizer) contractBlossom(v, to int) {
	curBase := m.lowestCommonAncestor(v, to)
	for i := range m.blos {
		m.blos[i] = false
	}
	m.markPath(v, curBase, to)
	m.markPath(to, curBase, v)
	for i := 0; i < m.n; i++ {
		if !m.blos[m.base[i]] {
			continue
		}
		m.base[i] = curBase
		if !m.used[i] {
			m.used[i] = true
			m.queue = append(m.queue, i)
		}
	}
}

// lowestCommonAncestor walks both tree paths to the root, in base space.
func (m *maximizer) lowestCommonAncestor(a, b int) int {
	seen := make([]bool, m.n)
	for {
		a = m.base[a]
		seen[a] = true
		if m.match[a] == -1 {
			break // root
		}
		a = m.p[m.match[a]]
	}
	for {
		b = m.base[b]
		if seen[b] {
			return b
		}
		b = m.p[m.match[b]]
	}
}

// markPath flags every blossom base on the path v→b and rethreads parent
// links so the later augmentation can walk through the contracted cycle.
func (m *maximizer) markPath(v, b, child int) {
	for m.base[v] != b {
		m.blos[m.base[v]] = true
		m.blos[m.base[m.match[v]]] = true
		m.p[v] = child
		child = m.match[v]
		v = m.p[m.match[v]]
	}
}

// augment flips matched/unmatched along the tree path ending at the
// exposed vertex u.
func (m *maximizer) augment(u int) {
	for u != -1 {
		pv := m.p[u]
		ppv := m.match[pv]
		m.match[u] = pv
		m.match[pv] = u
		u = ppv
	}
}

// edges converts the match array into a sorted edge list.
func (m *maximizer) edges() []core.Edge {
	var out []core.Edge
	for v, w := range m.match {
		if w > v {
			out = append(out, core.Edge{From: v, To: w})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })
	return out
}
