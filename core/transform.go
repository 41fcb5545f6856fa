// Copy-based transforms. Each transform reads its receiver (and possibly
// further graphs) and builds a fresh Graph; inputs are never mutated.
// The user-tag registry is carried onto every result.
package core

import "fmt"

// Clone returns a deep copy of g. Edge attribute maps keep the undirected
// aliasing invariant: the (i,j) and (j,i) entries of the copy share one map.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes: make([]vertex, len(g.nodes)),
		attr:  g.attr.clone(),
		index: make(map[string]int, len(g.index)),
		tags:  append([]string(nil), g.tags...),
	}
	if c.attr == nil {
		c.attr = make(Attrib)
	}
	for i := range g.nodes {
		src := &g.nodes[i]
		dst := &c.nodes[i]
		dst.label = src.label
		dst.attr = src.attr.clone()
		dst.neighbors = append([]int(nil), src.neighbors...)
		c.index[dst.label] = i
	}
	// Copy edge attributes, sharing one map per undirected pair.
	for i := range g.nodes {
		for j, attr := range g.nodes[i].nbrAttr {
			if c.nodes[i].nbrAttr == nil {
				c.nodes[i].nbrAttr = make(map[int]Attrib, len(g.nodes[i].nbrAttr))
			}
			if !g.Directed() && j < i {
				if shared, ok := c.nodes[j].nbrAttr[i]; ok {
					c.nodes[i].nbrAttr[j] = shared
					continue
				}
			}
			c.nodes[i].nbrAttr[j] = attr.clone()
		}
	}
	return c
}

// Equal reports whether g and h have the same directedness, the same
// vertex label set, the same edge set (by label pairs), and — when both
// are weighted — identical weights. Attributes other than weight do not
// participate.
// Complexity: O(V+E).
func (g *Graph) Equal(h *Graph) bool {
	if g.Directed() != h.Directed() || g.Weighted() != h.Weighted() {
		return false
	}
	if len(g.nodes) != len(h.nodes) || g.EdgeCount() != h.EdgeCount() {
		return false
	}
	for i := range g.nodes {
		if h.VertexIndex(g.nodes[i].label) < 0 {
			return false
		}
	}
	for _, e := range g.Edges() {
		hi := h.VertexIndex(g.nodes[e.From].label)
		hj := h.VertexIndex(g.nodes[e.To].label)
		if !h.HasEdge(hi, hj) {
			return false
		}
		if g.Weighted() {
			gw, _ := g.Weight(e.From, e.To)
			hw, _ := h.Weight(hi, hj)
			if gw != hw {
				return false
			}
		}
	}
	return true
}

// Complement returns the simple complement: same vertices, an edge exactly
// where g has none (loops excluded). Weights are not carried (the
// complement of a weighted graph is unweighted).
// Complexity: O(V²).
func (g *Graph) Complement() *Graph {
	c := New()
	if g.Directed() {
		c.attr[KeyDirected] = Bool(true)
	}
	c.tags = append([]string(nil), g.tags...)
	for i := range g.nodes {
		c.addNode(g.nodes[i].label)
	}
	n := len(g.nodes)
	for i := 0; i < n; i++ {
		start := 0
		if !g.Directed() {
			start = i + 1
		}
		for j := start; j < n; j++ {
			if i == j || g.HasEdge(i, j) {
				continue
			}
			c.AddEdgeIndex(i, j, defaultWeight)
		}
	}
	return c
}

// Underlying returns the undirected, unweighted skeleton of g.
// Applying it twice yields the same result as applying it once.
// Complexity: O(V+E).
func (g *Graph) Underlying() *Graph {
	u := New()
	u.tags = append([]string(nil), g.tags...)
	for i := range g.nodes {
		u.addNode(g.nodes[i].label)
	}
	for i := range g.nodes {
		for _, j := range g.nodes[i].neighbors {
			if !u.HasEdge(i, j) {
				u.AddEdgeIndex(i, j, defaultWeight)
			}
		}
	}
	return u
}

// Reverse returns the copy of a directed graph with every edge flipped.
// Returns ErrNotDirected for undirected input.
// Complexity: O(V+E).
func (g *Graph) Reverse() (*Graph, error) {
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	r := g.Clone()
	for i := range r.nodes {
		r.nodes[i].neighbors = nil
		r.nodes[i].nbrAttr = nil
	}
	for i := range g.nodes {
		for j, attr := range g.nodes[i].nbrAttr {
			r.setArc(j, i, attr.clone())
		}
	}
	return r, nil
}

// MakeDirected returns a directed copy where every undirected edge becomes
// the arc pair i→j, j→i. Directed input is returned as a plain clone.
// Complexity: O(V+E).
func (g *Graph) MakeDirected() *Graph {
	if g.Directed() {
		return g.Clone()
	}
	d := g.Clone()
	d.attr[KeyDirected] = Bool(true)
	// Symmetric entries already exist; split the shared attribute maps so
	// the two arcs become independent edges.
	for i := range d.nodes {
		for j, attr := range d.nodes[i].nbrAttr {
			if j > i {
				d.nodes[i].nbrAttr[j] = attr.clone()
			}
		}
	}
	return d
}

// InducedSubgraph returns the subgraph induced by the given vertex indices,
// keeping vertex and edge attributes. Duplicate or out-of-range indices
// are rejected before the copy is built.
// Complexity: O(len(vs)²).
func (g *Graph) InducedSubgraph(vs []int) (*Graph, error) {
	seen := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		if v < 0 || v >= len(g.nodes) {
			return nil, fmt.Errorf("%w: index %d", ErrVertexNotFound, v)
		}
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: index %d repeated", ErrDimensionMismatch, v)
		}
		seen[v] = struct{}{}
	}
	s := New()
	s.attr = g.attr.clone()
	delete(s.attr, KeyName)
	s.tags = append([]string(nil), g.tags...)
	pos := make(map[int]int, len(vs)) // old index → new index
	for k, v := range vs {
		s.addNode(g.nodes[v].label)
		s.nodes[k].attr = g.nodes[v].attr.clone()
		pos[v] = k
	}
	for _, v := range vs {
		for _, n := range g.nodes[v].neighbors {
			t, kept := pos[n]
			if !kept || s.HasEdge(pos[v], t) {
				continue
			}
			attr, _ := g.EdgeAttributes(v, n)
			s.setArc(pos[v], t, attr)
			if !s.Directed() && pos[v] != t {
				s.setArc(t, pos[v], attr)
			}
		}
	}
	return s, nil
}

// Union returns the label-wise union of g and h: the vertex set is the
// union of label sets, the edge set the union of edge sets. Both graphs
// must agree on directedness.
// Complexity: O(V+E) over both graphs.
func (g *Graph) Union(h *Graph) (*Graph, error) {
	if g.Directed() != h.Directed() {
		return nil, fmt.Errorf("%w: union requires matching directedness", ErrNotDirected)
	}
	u := g.Clone()
	for i := range h.nodes {
		u.EnsureVertex(h.nodes[i].label)
	}
	for _, e := range h.Edges() {
		ui := u.index[h.nodes[e.From].label]
		uj := u.index[h.nodes[e.To].label]
		if !u.HasEdge(ui, uj) {
			w, _ := h.Weight(e.From, e.To)
			u.AddEdgeIndex(ui, uj, w)
		}
	}
	return u, nil
}

// DisjointUnion returns the disjoint union of g and h; labels are prefixed
// "1:" and "2:" so the vertex sets never collide.
// Complexity: O(V+E) over both graphs.
func (g *Graph) DisjointUnion(h *Graph) (*Graph, error) {
	if g.Directed() != h.Directed() {
		return nil, fmt.Errorf("%w: disjoint union requires matching directedness", ErrNotDirected)
	}
	u := New()
	if g.Directed() {
		u.attr[KeyDirected] = Bool(true)
	}
	if g.Weighted() || h.Weighted() {
		u.attr[KeyWeighted] = Bool(true)
	}
	u.tags = append([]string(nil), g.tags...)
	copyInto := func(src *Graph, prefix string) {
		base := len(u.nodes)
		for i := range src.nodes {
			u.addNode(prefix + src.nodes[i].label)
		}
		for _, e := range src.Edges() {
			w, _ := src.Weight(e.From, e.To)
			u.AddEdgeIndex(base+e.From, base+e.To, w)
		}
	}
	copyInto(g, "1:")
	copyInto(h, "2:")
	return u, nil
}

// CartesianProduct returns g □ h: vertices are label pairs "a:b"; (a,b) is
// adjacent to (a',b') iff a==a' and b~b', or b==b' and a~a'.
// Complexity: O(Vg·Vh·(deg_g+deg_h)).
func (g *Graph) CartesianProduct(h *Graph) (*Graph, error) {
	if g.Directed() != h.Directed() {
		return nil, fmt.Errorf("%w: product requires matching directedness", ErrNotDirected)
	}
	p := g.newProductShell(h)
	nh := len(h.nodes)
	for i := range g.nodes {
		for j := range h.nodes {
			for _, jn := range h.nodes[j].neighbors {
				p.addProductEdge(i*nh+j, i*nh+jn)
			}
			for _, in := range g.nodes[i].neighbors {
				p.addProductEdge(i*nh+j, in*nh+j)
			}
		}
	}
	return p, nil
}

// TensorProduct returns g × h: (a,b) adjacent to (a',b') iff a~a' and b~b'.
// Complexity: O(Eg·Eh).
func (g *Graph) TensorProduct(h *Graph) (*Graph, error) {
	if g.Directed() != h.Directed() {
		return nil, fmt.Errorf("%w: product requires matching directedness", ErrNotDirected)
	}
	p := g.newProductShell(h)
	nh := len(h.nodes)
	for i := range g.nodes {
		for _, in := range g.nodes[i].neighbors {
			for j := range h.nodes {
				for _, jn := range h.nodes[j].neighbors {
					p.addProductEdge(i*nh+j, in*nh+jn)
				}
			}
		}
	}
	return p, nil
}

// newProductShell builds the vertex grid for a graph product of g and h.
func (g *Graph) newProductShell(h *Graph) *Graph {
	p := New()
	if g.Directed() {
		p.attr[KeyDirected] = Bool(true)
	}
	for i := range g.nodes {
		for j := range h.nodes {
			p.addNode(g.nodes[i].label + ":" + h.nodes[j].label)
		}
	}
	return p
}

// addProductEdge inserts an edge once, skipping the symmetric duplicate
// emitted by product enumeration.
func (p *Graph) addProductEdge(i, j int) {
	if !p.HasEdge(i, j) {
		p.AddEdgeIndex(i, j, defaultWeight)
	}
}

// PermuteVertices returns an isomorphic copy with vertex i of g stored at
// index sigma[i]. sigma must be a permutation of 0..V-1.
// Complexity: O(V+E).
func (g *Graph) PermuteVertices(sigma []int) (*Graph, error) {
	n := len(g.nodes)
	if len(sigma) != n {
		return nil, ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, s := range sigma {
		if s < 0 || s >= n || seen[s] {
			return nil, fmt.Errorf("%w: not a permutation", ErrDimensionMismatch)
		}
		seen[s] = true
	}
	p := New()
	p.attr = g.attr.clone()
	p.tags = append([]string(nil), g.tags...)
	p.nodes = make([]vertex, n)
	for i := range g.nodes {
		p.nodes[sigma[i]] = vertex{label: g.nodes[i].label, attr: g.nodes[i].attr.clone()}
		p.index[g.nodes[i].label] = sigma[i]
	}
	for _, e := range g.Edges() {
		w, _ := g.Weight(e.From, e.To)
		p.AddEdgeIndex(sigma[e.From], sigma[e.To], w)
	}
	return p, nil
}

// RelabelVertices returns a copy of g with vertex i relabeled labels[i].
// Complexity: O(V+E).
func (g *Graph) RelabelVertices(labels []string) (*Graph, error) {
	if len(labels) != len(g.nodes) {
		return nil, ErrDimensionMismatch
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = struct{}{}
	}
	c := g.Clone()
	c.index = make(map[string]int, len(labels))
	for i := range c.nodes {
		c.nodes[i].label = labels[i]
		c.index[labels[i]] = i
	}
	return c, nil
}

// ContractEdge returns a copy of g with edge i→j contracted: j's adjacency
// is merged into i, j is removed (indices renumber), and any resulting
// loop or duplicate is dropped.
// Complexity: O(V+E).
func (g *Graph) ContractEdge(i, j int) (*Graph, error) {
	if !g.HasEdge(i, j) {
		return nil, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	c := g.Clone()
	for _, n := range c.Neighbors(j) {
		if n == i || n == j {
			continue
		}
		if !c.HasEdge(i, n) {
			w, _ := c.Weight(j, n)
			c.AddEdgeIndex(i, n, w)
		}
	}
	if c.Directed() {
		for _, src := range c.InNeighbors(j) {
			if src == i || src == j {
				continue
			}
			if !c.HasEdge(src, i) {
				w, _ := c.Weight(src, j)
				c.AddEdgeIndex(src, i, w)
			}
		}
	}
	c.removeNode(j)
	return c, nil
}
