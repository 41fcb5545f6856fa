// Package planar tests planarity and produces combinatorial embeddings.
//
// What:
//
//   - Embed: a Demoucron-style incremental embedding. Each biconnected
//     block starts from a cycle (two faces); the remaining edges are
//     grouped into bridges, each bridge's admissible faces are the faces
//     containing all of its attachment vertices, the most constrained
//     bridge is embedded first by laying one of its paths across an
//     admissible face, and a bridge with no admissible face proves
//     non-planarity. Blocks of one component are then merged at their cut
//     vertices, which makes tree parts appear as faces that visit a vertex
//     more than once (the face walks into the branch and back). Components
//     are embedded independently and their faces concatenated.
//   - IsPlanar: the boolean form; non-planarity is not an error here.
//   - Triangulate: fans every interior face of four or more distinct
//     vertices into triangles, keeping the outer face, so a straight-line
//     drawing can anchor on triangulated interior faces.
//
// The embedding of a connected graph satisfies V − E + F = 2 (loops and
// parallel arcs do not occur; directed input is embedded on its underlying
// undirected view).
//
// Complexity: O(V·E) per block for the bridge recomputation loop, with the
// E ≤ 3V−6 density reject making the practical bound O(V²).
//
// Errors:
//
//   - ErrGraphNil   graph pointer is nil
//   - ErrNotPlanar  some bridge has no admissible face (or density reject)
package planar
