// Package traverse: options, errors, and the traversal result type.
package traverse

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrRootNotFound is returned when the root index is out of range.
	ErrRootNotFound = errors.New("traverse: root vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNoPath is returned by FindPath when the target is unreachable.
	ErrNoPath = errors.New("traverse: no path between the given vertices")
)

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing DFS and BFS.
type Options struct {
	// OnVisit is called when a vertex is visited. A returned error aborts
	// the traversal and is propagated to the caller.
	OnVisit func(v, depth int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks, no filtering, and no
// depth limit.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnVisit registers a visit callback; returning an error stops the
// traversal.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of one traversal. All slices are indexed by
// vertex; entries for unvisited vertices are -1 (false for Visited).
type Result struct {
	// Order lists visited vertices in visit sequence.
	Order []int

	// Depth is the tree depth (BFS: unweighted distance) from the root.
	Depth []int

	// Parent is the tree predecessor; the root (and unvisited) hold -1.
	Parent []int

	// Disc is the discovery time, counting from 0 in visit order.
	Disc []int

	// Low is the DFS low-link: the minimum discovery time reachable from
	// the vertex's subtree via at most one back edge. Nil for BFS.
	Low []int

	// Visited flags reachable vertices.
	Visited []bool
}

// newResult allocates a Result for n vertices with sentinel entries.
func newResult(n int, withLow bool) *Result {
	r := &Result{
		Order:   make([]int, 0, n),
		Depth:   make([]int, n),
		Parent:  make([]int, n),
		Disc:    make([]int, n),
		Visited: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		r.Depth[i] = -1
		r.Parent[i] = -1
		r.Disc[i] = -1
	}
	if withLow {
		r.Low = make([]int, n)
		for i := range r.Low {
			r.Low[i] = -1
		}
	}
	return r
}

// PathTo reconstructs the root→dest path from the parent links.
// Returns ErrNoPath when dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Visited) || !r.Visited[dest] {
		return nil, fmt.Errorf("%w: vertex %d not reached", ErrNoPath, dest)
	}
	var path []int
	for cur := dest; cur != -1; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
