package paths

import (
	"errors"
	"math"
)

// Sentinel errors for shortest-path operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("paths: graph is nil")

	// ErrVertexNotFound is returned when a source or target index is out
	// of range.
	ErrVertexNotFound = errors.New("paths: vertex not found")

	// ErrNegativeWeight is returned by Dijkstra when the pre-scan finds a
	// negative edge weight.
	ErrNegativeWeight = errors.New("paths: negative edge weight")
)

// Options configures a Dijkstra run.
type Options struct {
	// MaxDistance bounds exploration: vertices farther than this are never
	// finalized. Defaults to +Inf (no bound).
	MaxDistance float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the unbounded configuration.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance stops exploration beyond the given distance.
func WithMaxDistance(d float64) Option {
	return func(o *Options) { o.MaxDistance = d }
}

// Result carries the outcome of one Dijkstra run.
type Result struct {
	// Source is the root of the sweep.
	Source int

	// Dist[v] is the shortest distance source→v, +Inf when unreachable.
	Dist []float64

	// Parent[v] is the predecessor of v on a shortest path, -1 for the
	// source and for unreachable vertices.
	Parent []int
}

// PathTo reconstructs a shortest path source→t from the parent links.
// Returns nil when t was not reached.
func (r *Result) PathTo(t int) []int {
	if t < 0 || t >= len(r.Dist) || math.IsInf(r.Dist[t], 1) {
		return nil
	}
	var rev []int
	for v := t; v != -1; v = r.Parent[v] {
		rev = append(rev, v)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
