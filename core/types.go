// Package core: central types, sentinel errors, and the Graph constructor.
package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a label that does
	// not resolve to an existing vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateLabel indicates an attempt to add a vertex whose label is
	// already present in the graph.
	ErrDuplicateLabel = errors.New("core: duplicate vertex label")

	// ErrNonSquareMatrix indicates a matrix input whose row lengths differ
	// from the row count.
	ErrNonSquareMatrix = errors.New("core: matrix is not square")

	// ErrAsymmetricMatrix indicates an asymmetric adjacency/weight matrix
	// supplied for an undirected graph.
	ErrAsymmetricMatrix = errors.New("core: asymmetric matrix for undirected graph")

	// ErrDimensionMismatch indicates an argument whose length does not match
	// the vertex count.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrNotDirected indicates a directed-only operation on an undirected graph.
	ErrNotDirected = errors.New("core: graph is not directed")

	// ErrNotWeighted indicates a weighted-only operation on an unweighted graph.
	ErrNotWeighted = errors.New("core: graph is not weighted")

	// ErrUnknownTag indicates an attribute tag that was never registered.
	ErrUnknownTag = errors.New("core: unknown attribute tag")
)

// AttrKey identifies one attribute slot at graph, vertex, or edge granularity.
// Keys below KeyUser are built-in; user-defined tags are mapped to keys
// ≥ KeyUser by the per-graph registry (RegisterTag).
type AttrKey int

// Built-in attribute keys.
const (
	// KeyWeight is the edge weight (Number). Defaults to 1 on weighted graphs.
	KeyWeight AttrKey = iota

	// KeyColor is a display color (Number) on vertices or edges.
	KeyColor

	// KeyDirected is the graph-wide directedness flag (Bool).
	KeyDirected

	// KeyWeighted is the graph-wide weightedness flag (Bool).
	KeyWeighted

	// KeyPosition is a vertex coordinate (Point), set by layout consumers.
	KeyPosition

	// KeyName is the graph name (String).
	KeyName

	// KeyUser is the first key available to the user-tag registry.
	// Every key returned by RegisterTag is ≥ KeyUser.
	KeyUser
)

// Kind discriminates the closed set of attribute value variants.
type Kind int

// Attribute value kinds.
const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindPoint
)

// Value is a tagged variant holding one attribute value.
// The zero Value is the number 0.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	pt   []float64
}

// Number wraps a float64 as an attribute value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Str wraps a string as an attribute value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a bool as an attribute value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Point wraps a coordinate vector as an attribute value.
// The slice is kept by reference; callers must not mutate it afterwards.
func Point(coords ...float64) Value { return Value{kind: KindPoint, pt: coords} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsNumber returns the numeric payload and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsString returns the string payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsBool returns the boolean payload and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsPoint returns the coordinate payload and whether v is a point.
func (v Value) AsPoint() ([]float64, bool) { return v.pt, v.kind == KindPoint }

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == w.num
	case KindString:
		return v.str == w.str
	case KindBool:
		return v.b == w.b
	case KindPoint:
		if len(v.pt) != len(w.pt) {
			return false
		}
		for i := range v.pt {
			if v.pt[i] != w.pt[i] {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value for diagnostics and DOT export.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindPoint:
		s := "("
		for i, c := range v.pt {
			if i > 0 {
				s += ","
			}
			s += strconv.FormatFloat(c, 'g', -1, 64)
		}
		return s + ")"
	}
	return fmt.Sprintf("core.Value(kind=%d)", int(v.kind))
}

// Attrib maps attribute keys to values at one granularity
// (graph, vertex, or edge).
type Attrib map[AttrKey]Value

// clone returns a deep copy of the attribute map (nil stays nil).
func (a Attrib) clone() Attrib {
	if a == nil {
		return nil
	}
	c := make(Attrib, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// equal reports key-wise equality of two attribute maps.
func (a Attrib) equal(b Attrib) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// Edge is an ordered pair of vertex indices, used in result values.
// For undirected graphs From ≤ To by convention.
type Edge struct {
	From int
	To   int
}

// vertex is one arena record. Algorithm scratch (visited flags, discovery
// times, low-links) deliberately does not live here; algorithms allocate
// parallel per-call slices instead.
type vertex struct {
	label     string
	neighbors []int          // adjacency in insertion order
	nbrAttr   map[int]Attrib // neighbor index → edge attributes
	attr      Attrib
}

// Graph is the core in-memory graph structure: an ordered vertex arena plus
// graph-level attributes and a user-tag registry.
//
// Not safe for concurrent mutation; see the package documentation.
type Graph struct {
	nodes []vertex
	attr  Attrib
	index map[string]int // label → vertex index
	tags  []string       // registry: tags[i] ↔ AttrKey(KeyUser+i)
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (a single adjacency entry).
func WithDirected() GraphOption {
	return func(g *Graph) { g.attr[KeyDirected] = Bool(true) }
}

// WithWeighted marks the graph weighted; edge weights default to 1.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.attr[KeyWeighted] = Bool(true) }
}

// WithName sets the graph name (carried by copies and DOT export).
func WithName(name string) GraphOption {
	return func(g *Graph) { g.attr[KeyName] = Str(name) }
}

// New creates an empty Graph. By default the graph is undirected and
// unweighted.
// Complexity: O(1).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		attr:  make(Attrib),
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFromLabels creates a graph containing the given vertices and no edges.
// Complexity: O(V).
func NewFromLabels(labels []string, opts ...GraphOption) (*Graph, error) {
	g := New(opts...)
	if err := g.AddVertices(labels); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromEdges creates a graph from a list of index pairs over n vertices
// with default labels "0".."n-1". Endpoints outside [0,n) are rejected with
// ErrVertexNotFound before any edge is added.
// Complexity: O(V+E).
func NewFromEdges(n int, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := New(opts...)
	for i := 0; i < n; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge %d-%d outside 0..%d", ErrVertexNotFound, e.From, e.To, n-1)
		}
	}
	for _, e := range edges {
		g.AddEdgeIndex(e.From, e.To, defaultWeight)
	}
	return g, nil
}

// NewFromAdjacencyMatrix creates a graph from a square matrix m.
// Zero entries mean "no edge". If the graph is undirected (the default),
// m must be symmetric. Any entry other than 0 and 1 makes the graph
// weighted, with the entries used as weights.
//
// Input-shape violations (non-square, asymmetric) are detected before any
// vertex is created.
// Complexity: O(V²).
func NewFromAdjacencyMatrix(m [][]float64, opts ...GraphOption) (*Graph, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquareMatrix, i, len(row), n)
		}
	}
	g := New(opts...)
	if !g.Directed() {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if m[i][j] != m[j][i] {
					return nil, fmt.Errorf("%w: m[%d][%d]=%v, m[%d][%d]=%v",
						ErrAsymmetricMatrix, i, j, m[i][j], j, i, m[j][i])
				}
			}
		}
	}
	// Non-binary entries imply weights.
	if !g.Weighted() {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if m[i][j] != 0 && m[i][j] != 1 {
					g.attr[KeyWeighted] = Bool(true)
					break
				}
			}
		}
	}
	for i := 0; i < n; i++ {
		g.addNode(strconv.Itoa(i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m[i][j] == 0 {
				continue
			}
			if !g.Directed() && j < i {
				continue // symmetric half already added
			}
			g.AddEdgeIndex(i, j, m[i][j])
		}
	}
	return g, nil
}

// defaultWeight is the weight assigned to edges added without one.
const defaultWeight = 1.0

// Name returns the graph name ("" when unset).
func (g *Graph) Name() string {
	if v, ok := g.attr[KeyName]; ok {
		if s, isStr := v.AsString(); isStr {
			return s
		}
	}
	return ""
}

// SetName sets the graph name.
func (g *Graph) SetName(name string) { g.attr[KeyName] = Str(name) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	if v, ok := g.attr[KeyDirected]; ok {
		if b, isBool := v.AsBool(); isBool {
			return b
		}
	}
	return false
}

// Weighted reports whether edge weights are meaningful.
func (g *Graph) Weighted() bool {
	if v, ok := g.attr[KeyWeighted]; ok {
		if b, isBool := v.AsBool(); isBool {
			return b
		}
	}
	return false
}

// SetDirected flips the graph-wide directedness flag. It does not rewrite
// existing adjacency; use MakeDirected/Underlying for converting copies.
func (g *Graph) SetDirected(directed bool) { g.attr[KeyDirected] = Bool(directed) }

// RegisterTag maps an attribute tag string to a stable AttrKey ≥ KeyUser.
// Registering the same tag again returns the same key.
// Complexity: O(T) first time, O(T) lookup (T = registered tags; T is small).
func (g *Graph) RegisterTag(tag string) AttrKey {
	for i, t := range g.tags {
		if t == tag {
			return KeyUser + AttrKey(i)
		}
	}
	g.tags = append(g.tags, tag)
	return KeyUser + AttrKey(len(g.tags)-1)
}

// TagKey returns the key registered for tag, or ErrUnknownTag.
func (g *Graph) TagKey(tag string) (AttrKey, error) {
	for i, t := range g.tags {
		if t == tag {
			return KeyUser + AttrKey(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
}

// TagOf returns the tag string registered for a user key, or ErrUnknownTag.
func (g *Graph) TagOf(key AttrKey) (string, error) {
	i := int(key - KeyUser)
	if i < 0 || i >= len(g.tags) {
		return "", fmt.Errorf("%w: key %d", ErrUnknownTag, int(key))
	}
	return g.tags[i], nil
}

// Tags returns the registered user tags in registration order.
func (g *Graph) Tags() []string {
	return append([]string(nil), g.tags...)
}
