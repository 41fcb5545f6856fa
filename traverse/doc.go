// Package traverse implements depth-first and breadth-first traversal over
// a core.Graph, plus the cycle queries built directly on them: cycle and
// path discovery, girth, and odd girth.
//
// What:
//
//   - DFS: iterative depth-first search producing visit order, depth,
//     parent links, discovery times, and low-link values (the minimum
//     discovery time reachable from a subtree via one back edge).
//   - BFS: breadth-first search producing visit order, depth (unweighted
//     distance), and parent links.
//   - FindCycle / FindPath: any one cycle, or a path between two vertices.
//   - Girth / OddGirth: length of the shortest (odd) cycle.
//
// Traversal scratch (visited flags, times) lives in per-call slices indexed
// like the vertex arena, never on the graph, so any number of traversals
// may be prepared against the same read-only graph.
//
// Complexity:
//
//   - DFS, BFS, FindCycle, FindPath: O(V+E)
//   - Girth, OddGirth:               O(V·(V+E)) (one BFS per root)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrRootNotFound   root index out of range
//   - hook errors       propagated from OnVisit
package traverse
