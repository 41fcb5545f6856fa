// Package clique enumerates cliques of an undirected core.Graph and
// derives the classical complement reductions.
//
// What:
//
//   - MaximalCliques: pivoted backtracking over (candidate, excluded)
//     sets — Bron–Kerbosch with Tomita pivot selection, branching only on
//     the pivot's non-neighbors.
//   - MaximumClique / CliqueNumber: largest clique via the same search
//     with a size bound.
//   - Cover: clique cover by repeatedly extracting a maximum clique from
//     the remaining induced subgraph (greedy, not optimal). An optional
//     cap k on the number of cliques makes the cover a reported success
//     flag: failing to cover within k cliques is an expected outcome, not
//     an error.
//   - Complement reductions, explicit and documented rather than separate
//     algorithms: ChromaticNumber(G) = len(Cover(complement(G))) (an upper
//     bound by greedy cover, exact on the small graphs this is meant for);
//     MaximumIndependentSet(G) = MaximumClique(complement(G));
//     IndependenceNumber likewise.
//
// The search is exponential in the worst case (3^(V/3) maximal cliques);
// the caller bounds input size, not the engine.
//
// Errors:
//
//   - ErrGraphNil   graph pointer is nil
//   - ErrDirected   clique structure is defined on undirected graphs only
package clique
