// Vertex lifecycle and queries.
//
// Index contract: vertex indices are dense (0..n-1) and stable until a
// removal or relabeling operation, which compacts the arena and renumbers.
package core

import "fmt"

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.nodes) }

// Label returns the label of the vertex at index i.
// Panics if i is out of range (programming error by contract).
func (g *Graph) Label(i int) string { return g.nodes[i].label }

// Labels returns all vertex labels in index order.
// Complexity: O(V).
func (g *Graph) Labels() []string {
	out := make([]string, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].label
	}
	return out
}

// VertexIndex returns the index of the vertex with the given label,
// or -1 when no such vertex exists. Lookup never fails with an error;
// -1 is the "not found" sentinel.
// Complexity: O(1).
func (g *Graph) VertexIndex(label string) int {
	if i, ok := g.index[label]; ok {
		return i
	}
	return -1
}

// HasVertex reports whether a vertex with the given label exists.
func (g *Graph) HasVertex(label string) bool { return g.VertexIndex(label) >= 0 }

// addNode appends a vertex record without duplicate checking.
func (g *Graph) addNode(label string) int {
	i := len(g.nodes)
	g.nodes = append(g.nodes, vertex{label: label})
	g.index[label] = i
	return i
}

// AddVertex appends a vertex with the given label and returns its index.
// Returns ErrDuplicateLabel if the label is already present.
// Complexity: O(1).
func (g *Graph) AddVertex(label string) error {
	if g.HasVertex(label) {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	g.addNode(label)
	return nil
}

// AddVertices appends one vertex per label, rejecting the whole batch if
// any label is duplicated (no partial mutation).
// Complexity: O(len(labels)).
func (g *Graph) AddVertices(labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l]; dup || g.HasVertex(l) {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		seen[l] = struct{}{}
	}
	for _, l := range labels {
		g.addNode(l)
	}
	return nil
}

// EnsureVertex returns the index of the labeled vertex, adding it first if
// missing. Used by label-form edge insertion and the DOT reader.
func (g *Graph) EnsureVertex(label string) int {
	if i := g.VertexIndex(label); i >= 0 {
		return i
	}
	return g.addNode(label)
}

// RemoveVertex deletes the vertex with the given label together with all
// incident adjacency entries. Remaining vertices are compacted and
// renumbered: every index > removed shifts down by one. Callers must not
// cache indices across this call.
// Complexity: O(V+E).
func (g *Graph) RemoveVertex(label string) error {
	i := g.VertexIndex(label)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}
	g.removeNode(i)
	return nil
}

// RemoveVertices deletes every labeled vertex; the whole batch is validated
// before any mutation.
// Complexity: O(len(labels)·(V+E)).
func (g *Graph) RemoveVertices(labels []string) error {
	for _, l := range labels {
		if !g.HasVertex(l) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, l)
		}
	}
	for _, l := range labels {
		g.removeNode(g.index[l])
	}
	return nil
}

// removeNode erases index i, compacts the arena, and remaps every stored
// neighbor index.
func (g *Graph) removeNode(i int) {
	// Drop adjacency entries pointing at i.
	for j := range g.nodes {
		if j == i {
			continue
		}
		g.nodes[j].dropNeighbor(i)
	}
	// Compact the arena.
	delete(g.index, g.nodes[i].label)
	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
	// Remap neighbor indices > i and rebuild the label index.
	for j := range g.nodes {
		g.nodes[j].shiftAbove(i)
		g.index[g.nodes[j].label] = j
	}
}

// dropNeighbor removes every adjacency entry toward index t.
func (v *vertex) dropNeighbor(t int) {
	kept := v.neighbors[:0]
	for _, n := range v.neighbors {
		if n != t {
			kept = append(kept, n)
		}
	}
	v.neighbors = kept
	delete(v.nbrAttr, t)
}

// shiftAbove decrements every neighbor index greater than removed.
func (v *vertex) shiftAbove(removed int) {
	var moved bool
	for k, n := range v.neighbors {
		if n > removed {
			v.neighbors[k] = n - 1
			moved = true
		}
	}
	if !moved || v.nbrAttr == nil {
		return
	}
	remapped := make(map[int]Attrib, len(v.nbrAttr))
	for n, a := range v.nbrAttr {
		if n > removed {
			n--
		}
		remapped[n] = a
	}
	v.nbrAttr = remapped
}

// Neighbors returns the adjacency list of vertex i in insertion order.
// For directed graphs these are the out-neighbors. The returned slice is a
// copy.
// Complexity: O(deg).
func (g *Graph) Neighbors(i int) []int {
	return append([]int(nil), g.nodes[i].neighbors...)
}

// InNeighbors returns the vertices with an edge into i. For undirected
// graphs this equals Neighbors.
// Complexity: O(V+E).
func (g *Graph) InNeighbors(i int) []int {
	if !g.Directed() {
		return g.Neighbors(i)
	}
	var in []int
	for j := range g.nodes {
		for _, n := range g.nodes[j].neighbors {
			if n == i {
				in = append(in, j)
				break
			}
		}
	}
	return in
}

// OutDegree returns the number of edges leaving vertex i.
// Complexity: O(1).
func (g *Graph) OutDegree(i int) int { return len(g.nodes[i].neighbors) }

// InDegree returns the number of edges entering vertex i.
// Complexity: O(V+E) directed, O(1) undirected.
func (g *Graph) InDegree(i int) int {
	if !g.Directed() {
		return len(g.nodes[i].neighbors)
	}
	deg := 0
	for j := range g.nodes {
		for _, n := range g.nodes[j].neighbors {
			if n == i {
				deg++
			}
		}
	}
	return deg
}

// Degree returns the degree of vertex i: in+out for directed graphs, the
// neighbor count for undirected graphs with self-loops counted twice.
func (g *Graph) Degree(i int) int {
	if g.Directed() {
		return g.OutDegree(i) + g.InDegree(i)
	}
	deg := len(g.nodes[i].neighbors)
	for _, n := range g.nodes[i].neighbors {
		if n == i {
			deg++ // academic convention: a loop contributes 2
		}
	}
	return deg
}

// MinDegree returns the smallest vertex degree (0 for the empty graph).
// Complexity: O(V) undirected, O(V·E) directed.
func (g *Graph) MinDegree() int {
	if len(g.nodes) == 0 {
		return 0
	}
	min := g.Degree(0)
	for i := 1; i < len(g.nodes); i++ {
		if d := g.Degree(i); d < min {
			min = d
		}
	}
	return min
}

// MaxDegree returns the largest vertex degree (0 for the empty graph).
func (g *Graph) MaxDegree() int {
	max := 0
	for i := range g.nodes {
		if d := g.Degree(i); d > max {
			max = d
		}
	}
	return max
}

// IsRegular reports whether every vertex has degree d.
func (g *Graph) IsRegular(d int) bool {
	for i := range g.nodes {
		if g.Degree(i) != d {
			return false
		}
	}
	return true
}

// DegreeSequence returns the vertex degrees in index order (not sorted).
// Complexity: O(V) undirected.
func (g *Graph) DegreeSequence() []int {
	seq := make([]int, len(g.nodes))
	for i := range g.nodes {
		seq[i] = g.Degree(i)
	}
	return seq
}
