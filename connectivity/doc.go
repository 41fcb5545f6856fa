// Package connectivity answers the structural connectivity questions over
// a core.Graph: connected components, cut vertices (articulation points),
// biconnected components (blocks), strongly connected components, the
// k-connectivity predicates, and tree/forest classification.
//
// What:
//
//   - Components / IsConnected: connectivity of the underlying undirected
//     structure (directed graphs are inspected ignoring direction).
//   - CutVertices: one low-link DFS; a non-root vertex is a cut vertex iff
//     some DFS child's low-link is ≥ its own discovery time, the root iff
//     it has more than one DFS-tree child.
//   - Blocks: maximal biconnected subgraphs as edge sets, emitted by
//     popping the DFS edge stack back at each articulation point.
//   - StronglyConnected / IsStronglyConnected: Tarjan's algorithm with an
//     explicit node stack; a component is emitted when a vertex's low-link
//     equals its own discovery time.
//   - IsBiconnected, IsTriconnected: boolean derivations; triconnectivity
//     is the naive per-vertex removal re-test, not an SPQR construction.
//   - IsTree, IsForest: undirected acyclicity (tree: also connected).
//
// Complexity:
//
//   - Components, CutVertices, Blocks, StronglyConnected: O(V+E)
//   - IsTriconnected: O(V·(V+E))
//
// All scratch state (discovery times, low-links, stacks) is allocated per
// call; the graph itself is only read.
package connectivity
