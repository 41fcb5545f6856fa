// Package layout positions the vertices of a core.Graph in the plane or
// in space.
//
// What:
//
//   - Compute(g, style, opts...) returns a Layout: one coordinate slice
//     per vertex (2 components, or 3 for StyleSpring3D).
//   - StyleSpring / StyleSpring3D: Fruchterman–Reingold force placement.
//     Attraction d²/K along edges, distance-bounded repulsion K²/d between
//     pairs, per-iteration displacement capped by a cooling temperature,
//     until the largest displacement drops under the tolerance. Graphs
//     above a size threshold go through multilevel coarsening: a maximal
//     independent set becomes the coarse graph (connected when within two
//     hops), the coarse layout is computed recursively and prolonged back
//     through a sparse weight matrix, then relaxed locally.
//   - StyleTree: layered tree drawing, parent centered over its children.
//     A bottom-up pass computes each subtree's preliminary position and
//     extent, a top-down pass accumulates the offsets. A component with a
//     cycle is ErrNotTree.
//   - StyleCircle: vertices on a circle of radius K, ordered by the
//     supplied leading cycle, a discovered cycle, or construction order.
//   - StylePlanar: planar straight-line drawing. The embedding is
//     triangulated, the largest face becomes the outer regular polygon,
//     interior vertices relax to the barycenter of their neighbors.
//     Non-planar input propagates planar.ErrNotPlanar.
//
// Disconnected graphs are laid out per component and the component
// bounding rectangles are packed greedily (sorted by height) with the
// separation margin between them.
//
// Randomness is injected: WithSeed or WithRand; the default seed is fixed,
// so layouts are reproducible.
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrNotTree        StyleTree on a component containing a cycle
//   - ErrUnknownStyle   style outside the enumerated set
//   - planar.ErrNotPlanar  StylePlanar on a non-planar graph
package layout
