// Package matching computes matchings on undirected graphs.
//
// What:
//
//   - Maximum: maximum-cardinality matching via Edmonds' blossom
//     algorithm. The search grows an alternating tree per exposed vertex;
//     an edge closing an odd cycle (a blossom) triggers contraction, done
//     as an index-relabeling over a base array rather than by building a
//     contracted graph; an edge to another exposed vertex yields an
//     augmenting path that enlarges the matching by one.
//   - Maximal: greedy maximal (not maximum) matching in edge order.
//
// Weights are ignored; edge direction is a precondition violation.
//
// Complexity:
//
//   - Maximum: O(V·E) class (one O(E) alternating-tree search per
//     augmentation, at most V/2 augmentations, blossom bookkeeping O(V)).
//   - Maximal: O(V+E).
//
// Errors:
//
//   - ErrGraphNil   graph pointer is nil
//   - ErrDirected   matching is defined on undirected graphs only
package matching
