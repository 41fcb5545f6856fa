// Package paths computes shortest-path distances on a core.Graph.
//
// What:
//
//   - Dijkstra: single-source distances with a binary min-heap and the
//     lazy-decrease-key strategy (duplicates pushed, stale entries skipped
//     on pop). An optional target set stops the sweep as soon as every
//     target is finalized. Unweighted graphs are accepted: every edge then
//     counts 1.
//   - FloydWarshall: all-pairs distances in O(V³). Negative weights are
//     allowed; the caller must not feed a graph with a negative cycle
//     (undetected, results are then meaningless).
//   - Diameter: largest finite pairwise distance, with an ok flag that is
//     false when some pair is unreachable.
//
// Complexity:
//
//   - Dijkstra: O((V+E) log V) time, O(V+E) space.
//   - FloydWarshall / Diameter: O(V³) time, O(V²) space.
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrVertexNotFound  source or target index out of range
//   - ErrNegativeWeight  Dijkstra found a negative edge during the pre-scan
package paths
