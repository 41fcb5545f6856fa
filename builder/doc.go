// Package builder constructs well-known graphs and realizes degree
// sequences.
//
// What:
//
//   - Parametric families: Cycle, Path, Complete, CompleteBipartite,
//     Star, Wheel, Hypercube, Grid, Petersen (the generalized Petersen
//     graph GP(n,k)) and LCF (cubic Hamiltonian graphs from an LCF code).
//   - FromName: the named catalog — petersen, durer, heawood,
//     mobius-kantor, pappus, desargues, dodecahedron, mcgee, nauru,
//     tetrahedron, octahedron, cube, icosahedron.
//   - Degree sequences: IsGraphic runs the Erdős–Gallai test,
//     FromDegreeSequence realizes a graphic sequence by Havel–Hakimi
//     (highest remaining degree connects to the next-highest ones). The
//     realized graph's sorted degree sequence equals the sorted input.
//
// Every constructor emits vertices 0..n-1 with decimal labels in
// ascending order and edges in a fixed order, so repeated runs build
// identical graphs.
//
// Errors:
//
//   - ErrTooFewVertices  a size parameter is below the family's minimum
//   - ErrBadParameter    a structural parameter is out of domain
//   - ErrUnknownName     FromName received a name outside the catalog
//   - ErrNotGraphic      the degree sequence fails Erdős–Gallai
package builder
