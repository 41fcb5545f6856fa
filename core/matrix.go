// Matrix materializations of the adjacency structure.
package core

// AdjacencyMatrix returns the V×V 0/1 matrix a with a[i][j] = 1 iff the
// adjacency entry i→j exists. Symmetric for undirected graphs.
// Complexity: O(V²).
func (g *Graph) AdjacencyMatrix() [][]float64 {
	n := len(g.nodes)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for _, j := range g.nodes[i].neighbors {
			m[i][j] = 1
		}
	}
	return m
}

// WeightMatrix returns the V×V matrix of edge weights with 0 meaning
// "no edge". Requires a weighted graph (ErrNotWeighted otherwise).
// Complexity: O(V²).
func (g *Graph) WeightMatrix() ([][]float64, error) {
	if !g.Weighted() {
		return nil, ErrNotWeighted
	}
	n := len(g.nodes)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for _, j := range g.nodes[i].neighbors {
			w, err := g.Weight(i, j)
			if err != nil {
				return nil, err
			}
			m[i][j] = w
		}
	}
	return m, nil
}

// IncidenceMatrix returns the V×E incidence matrix over Edges() order.
// Undirected: both endpoint rows get 1 (a loop gets 2).
// Directed: tail −1, head +1 (a loop gets 2 by the original convention).
// Complexity: O(V·E).
func (g *Graph) IncidenceMatrix() [][]float64 {
	edges := g.Edges()
	m := make([][]float64, len(g.nodes))
	for i := range m {
		m[i] = make([]float64, len(edges))
	}
	for k, e := range edges {
		if e.From == e.To {
			m[e.From][k] = 2
			continue
		}
		if g.Directed() {
			m[e.From][k] = -1
			m[e.To][k] = 1
		} else {
			m[e.From][k] = 1
			m[e.To][k] = 1
		}
	}
	return m
}

// MakeWeighted returns a weighted copy of g taking edge weights from the
// square matrix m (only entries for existing edges are consulted).
// Shape errors are detected before the copy is built.
// Complexity: O(V²).
func (g *Graph) MakeWeighted(m [][]float64) (*Graph, error) {
	n := len(g.nodes)
	if len(m) != n {
		return nil, ErrDimensionMismatch
	}
	for _, row := range m {
		if len(row) != n {
			return nil, ErrNonSquareMatrix
		}
	}
	if !g.Directed() {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if m[i][j] != m[j][i] {
					return nil, ErrAsymmetricMatrix
				}
			}
		}
	}
	c := g.Clone()
	c.attr[KeyWeighted] = Bool(true)
	for _, e := range c.Edges() {
		if err := c.SetWeight(e.From, e.To, m[e.From][e.To]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MakeUnweighted returns an unweighted copy of g with every weight reset
// to the default.
// Complexity: O(V+E).
func (g *Graph) MakeUnweighted() *Graph {
	c := g.Clone()
	delete(c.attr, KeyWeighted)
	for i := range c.nodes {
		for _, attr := range c.nodes[i].nbrAttr {
			attr[KeyWeight] = Number(defaultWeight)
		}
	}
	return c
}
