package layout

import (
	"errors"
	"math/rand"
)

// Sentinel errors for layout operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("layout: graph is nil")

	// ErrNotTree is returned by StyleTree when a component has a cycle.
	ErrNotTree = errors.New("layout: component is not a tree")

	// ErrUnknownStyle is returned for a style value outside the enum.
	ErrUnknownStyle = errors.New("layout: unknown style")
)

// Style selects the placement algorithm.
type Style int

const (
	// StyleSpring is the 2D force-directed placement.
	StyleSpring Style = iota
	// StyleSpring3D is the force-directed placement in three dimensions.
	StyleSpring3D
	// StyleTree is the layered tree drawing.
	StyleTree
	// StyleCircle places vertices on a circle along a leading cycle.
	StyleCircle
	// StylePlanar is the straight-line drawing of a planar embedding.
	StylePlanar
)

// Point is one vertex position, 2 or 3 coordinates.
type Point = []float64

// Layout holds one Point per vertex index.
type Layout [][]float64

// Options configures Compute.
type Options struct {
	// K is the ideal edge length; every style scales by it.
	K float64

	// Tolerance stops iterative refinement once the largest per-vertex
	// displacement falls below Tolerance·K.
	Tolerance float64

	// Seed seeds the default RNG; ignored when Rand is set.
	Seed int64

	// Rand supplies the randomness for spring initialization.
	Rand *rand.Rand

	// Roots are preferred tree roots, one per component (StyleTree).
	Roots []int

	// Cycle is the leading cycle for StyleCircle, as vertex indices.
	Cycle []int

	// Separation is the packing margin between component rectangles.
	Separation float64

	// OnIteration, when set, observes each spring relaxation round with
	// the iteration number and the largest displacement.
	OnIteration func(iter int, maxShift float64)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: K=1, tolerance 0.01,
// fixed seed, separation K/2.
func DefaultOptions() Options {
	return Options{K: 1, Tolerance: 0.01, Seed: 1, Separation: 0.5}
}

// WithK sets the ideal edge length.
func WithK(k float64) Option { return func(o *Options) { o.K = k } }

// WithTolerance sets the convergence tolerance (relative to K).
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithSeed seeds the internal RNG.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithRand injects an RNG, overriding WithSeed.
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithRoots sets preferred tree roots.
func WithRoots(roots ...int) Option { return func(o *Options) { o.Roots = roots } }

// WithCycle sets the leading cycle for the circle style.
func WithCycle(cycle []int) Option { return func(o *Options) { o.Cycle = cycle } }

// WithSeparation sets the packing margin between components.
func WithSeparation(sep float64) Option { return func(o *Options) { o.Separation = sep } }

// WithOnIteration registers the relaxation observer.
func WithOnIteration(fn func(iter int, maxShift float64)) Option {
	return func(o *Options) { o.OnIteration = fn }
}
