// Attribute get/set/discard at graph, vertex, and edge granularity.
//
// Getters report presence with a bool, never an error, mirroring the
// "not found is a sentinel" lookup contract. Discard of an absent key is a
// no-op reported as false.
package core

import "fmt"

// GraphAttribute returns the graph-level value for key.
func (g *Graph) GraphAttribute(key AttrKey) (Value, bool) {
	v, ok := g.attr[key]
	return v, ok
}

// SetGraphAttribute sets a graph-level attribute.
func (g *Graph) SetGraphAttribute(key AttrKey, val Value) { g.attr[key] = val }

// DiscardGraphAttribute removes a graph-level attribute, reporting whether
// it was present.
func (g *Graph) DiscardGraphAttribute(key AttrKey) bool {
	_, ok := g.attr[key]
	delete(g.attr, key)
	return ok
}

// GraphAttributes returns a copy of the graph attribute map.
func (g *Graph) GraphAttributes() Attrib { return g.attr.clone() }

// VertexAttribute returns the value for key on vertex i.
func (g *Graph) VertexAttribute(i int, key AttrKey) (Value, bool) {
	v, ok := g.nodes[i].attr[key]
	return v, ok
}

// SetVertexAttribute sets an attribute on vertex i.
func (g *Graph) SetVertexAttribute(i int, key AttrKey, val Value) {
	if g.nodes[i].attr == nil {
		g.nodes[i].attr = make(Attrib)
	}
	g.nodes[i].attr[key] = val
}

// DiscardVertexAttribute removes an attribute from vertex i, reporting
// whether it was present.
func (g *Graph) DiscardVertexAttribute(i int, key AttrKey) bool {
	_, ok := g.nodes[i].attr[key]
	delete(g.nodes[i].attr, key)
	return ok
}

// VertexAttributes returns a copy of vertex i's attribute map.
func (g *Graph) VertexAttributes(i int) Attrib { return g.nodes[i].attr.clone() }

// EdgeAttribute returns the value for key on edge i→j, together with a
// presence flag. The error reports a missing edge, not a missing key.
func (g *Graph) EdgeAttribute(i, j int, key AttrKey) (Value, bool, error) {
	attr, ok := g.nodes[i].nbrAttr[j]
	if !ok {
		return Value{}, false, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	v, present := attr[key]
	return v, present, nil
}

// SetEdgeAttribute sets an attribute on edge i→j. For undirected graphs
// the symmetric entry shares the same map, so one write covers both
// orientations.
func (g *Graph) SetEdgeAttribute(i, j int, key AttrKey, val Value) error {
	attr, ok := g.nodes[i].nbrAttr[j]
	if !ok {
		return fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	attr[key] = val
	return nil
}

// DiscardEdgeAttribute removes an attribute from edge i→j, reporting
// whether it was present.
func (g *Graph) DiscardEdgeAttribute(i, j int, key AttrKey) (bool, error) {
	attr, ok := g.nodes[i].nbrAttr[j]
	if !ok {
		return false, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	_, present := attr[key]
	delete(attr, key)
	return present, nil
}

// EdgeAttributes returns a copy of the attribute map of edge i→j.
func (g *Graph) EdgeAttributes(i, j int) (Attrib, error) {
	attr, ok := g.nodes[i].nbrAttr[j]
	if !ok {
		return nil, fmt.Errorf("%w: %d-%d", ErrEdgeNotFound, i, j)
	}
	return attr.clone(), nil
}
