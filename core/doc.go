// Package core defines the central Graph and attribute types on which the
// rest of graphein operates.
//
// What:
//
//   - Graph: an arena of index-addressed vertices (0..n-1), each carrying a
//     printable label, an adjacency list with per-neighbor attribute maps,
//     and a vertex attribute map. Edges are adjacency entries, not objects.
//   - Value: a closed tagged variant (number / string / bool / point) used
//     for every attribute at graph, vertex, and edge granularity.
//   - AttrKey: small integer attribute keys. Built-in keys cover weight,
//     color, directedness, weightedness, position, and name; arbitrary user
//     tags are mapped to keys ≥ KeyUser by a per-graph registry.
//   - Copy-based transforms: Clone, Complement, Underlying, Reverse,
//     InducedSubgraph, Union, DisjointUnion, CartesianProduct,
//     TensorProduct, PermuteVertices, RelabelVertices, ContractEdge.
//   - Matrix materializations: adjacency, weight, and incidence matrices.
//
// Why:
//
//   - Vertices reference each other by integer index into one slice, not by
//     pointer, sidestepping the ownership cycles of linked adjacency
//     structures and making per-call scratch a parallel []int away.
//   - The directed and weighted flags are graph attributes, so copies and
//     transforms carry them like any other metadata.
//
// Contract notes:
//
//   - Vertex indices are stable until a removal or relabeling operation,
//     which compacts the arena and renumbers; callers must not cache
//     indices across RemoveVertex/RemoveVertices.
//   - Label lookup for a missing label returns -1, never an error.
//     Passing an out-of-range index is a programming error and panics.
//   - Undirected graphs store symmetric adjacency: for every (i,j) the
//     entry (j,i) exists and shares the same logical edge attributes.
//   - A Graph is not safe for concurrent mutation. Read-only queries on an
//     otherwise-idle Graph are safe.
//
// Errors:
//
//   - ErrVertexNotFound, ErrEdgeNotFound   reference does not resolve
//   - ErrDuplicateLabel                    label already present
//   - ErrNonSquareMatrix, ErrAsymmetricMatrix, ErrDimensionMismatch
//     input-shape violations, detected before any graph state mutates
//   - ErrNotDirected, ErrNotWeighted       precondition violations
//   - ErrUnknownTag                        tag was never registered
package core
