// Edge lifecycle and queries. An edge is an adjacency entry carrying an
// attribute map; undirected graphs keep symmetric entries whose attribute
// maps alias the same logical edge.
package core

import "fmt"

// AddEdge inserts an edge between the labeled endpoints, creating missing
// vertices on the fly (label form). On unweighted graphs the weight
// argument is ignored and the default weight 1 is stored.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) {
	i := g.EnsureVertex(from)
	j := g.EnsureVertex(to)
	g.AddEdgeIndex(i, j, weight)
}

// AddEdgeIndex inserts an edge by endpoint indices. Adding an existing edge
// overwrites its weight (simple graph: no parallel edges).
// Panics if an index is out of range.
func (g *Graph) AddEdgeIndex(i, j int, weight float64) {
	if !g.Weighted() {
		weight = defaultWeight
	}
	attr := Attrib{KeyWeight: Number(weight)}
	g.setArc(i, j, attr)
	if !g.Directed() && i != j {
		g.setArc(j, i, attr) // shared map: one logical edge
	}
}

// setArc records the adjacency entry i→j with the given attribute map.
func (g *Graph) setArc(i, j int, attr Attrib) {
	v := &g.nodes[i]
	if v.nbrAttr == nil {
		v.nbrAttr = make(map[int]Attrib)
	}
	if _, exists := v.nbrAttr[j]; !exists {
		v.neighbors = append(v.neighbors, j)
	}
	v.nbrAttr[j] = attr
}

// HasEdge reports whether the adjacency entry i→j exists. On undirected
// graphs the orientation is immaterial.
// Complexity: O(1).
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || j < 0 || i >= len(g.nodes) || j >= len(g.nodes) {
		return false
	}
	_, ok := g.nodes[i].nbrAttr[j]
	return ok
}

// RemoveEdge deletes the edge i→j (both directions for undirected graphs).
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(deg).
func (g *Graph) RemoveEdge(i, j int) error {
	if !g.HasEdge(i, j) {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	g.nodes[i].dropNeighbor(j)
	if !g.Directed() && i != j {
		g.nodes[j].dropNeighbor(i)
	}
	return nil
}

// Weight returns the weight of edge i→j, or ErrEdgeNotFound.
// On unweighted graphs every existing edge reports weight 1.
func (g *Graph) Weight(i, j int) (float64, error) {
	attr, ok := g.nodes[i].nbrAttr[j]
	if !ok {
		return 0, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	if v, isSet := attr[KeyWeight]; isSet {
		if w, isNum := v.AsNumber(); isNum {
			return w, nil
		}
	}
	return defaultWeight, nil
}

// SetWeight sets the weight of an existing edge.
// Returns ErrNotWeighted on unweighted graphs, ErrEdgeNotFound otherwise.
func (g *Graph) SetWeight(i, j int, weight float64) error {
	if !g.Weighted() {
		return ErrNotWeighted
	}
	attr, ok := g.nodes[i].nbrAttr[j]
	if !ok {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	attr[KeyWeight] = Number(weight)
	return nil
}

// EdgeCount returns the number of edges; a symmetric undirected pair
// counts once.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for i := range g.nodes {
		total += len(g.nodes[i].neighbors)
		if !g.Directed() {
			// loops are stored once but must not be halved
			for _, n := range g.nodes[i].neighbors {
				if n == i {
					total++
				}
			}
		}
	}
	if g.Directed() {
		return total
	}
	return total / 2
}

// Edges returns every edge as an ordered index pair: as stored for
// directed graphs, with From ≤ To (each pair once) for undirected graphs.
// Order follows vertex index, then adjacency insertion order.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for i := range g.nodes {
		for _, j := range g.nodes[i].neighbors {
			if !g.Directed() && j < i {
				continue
			}
			out = append(out, Edge{From: i, To: j})
		}
	}
	return out
}

// IncidentEdges returns every edge with at least one endpoint in vs.
// Complexity: O(V+E).
func (g *Graph) IncidentEdges(vs []int) []Edge {
	mark := make([]bool, len(g.nodes))
	for _, v := range vs {
		mark[v] = true
	}
	var out []Edge
	for _, e := range g.Edges() {
		if mark[e.From] || mark[e.To] {
			out = append(out, e)
		}
	}
	return out
}
