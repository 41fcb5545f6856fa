// Package graphein is an in-memory toolkit for building, analyzing, and
// drawing graphs — from core primitives to planarity testing and layout.
//
// 🚀 What is graphein?
//
//	A compact, index-based library that brings together:
//		• Core primitives: labeled vertices, simple edges, typed attributes
//		• Builders: classic families (cycles, grids, hypercubes), a named
//		  catalog of famous graphs, and degree-sequence realization
//		• Traversals: BFS, DFS, cycle detection, girth
//		• Connectivity: components, biconnected blocks, articulation points
//		• Shortest paths: Dijkstra, Floyd–Warshall, diameter
//		• Matching: maximum matching in general graphs
//		• Cliques: maximal-clique enumeration, clique cover, coloring bounds
//		• Planarity: combinatorial embeddings, faces, triangulation
//		• Layout: spring, tree, circular, and planar vertex placement
//		• DOT: strict reading and writing of a graphviz subset
//
// ✨ Why choose graphein?
//
//   - Index-arena storage – vertices are dense ints, algorithms stay flat
//   - Deterministic – identical inputs always produce identical outputs
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every package accepts the same *core.Graph
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/         — fundamental Graph, Edge, Value types & attribute tags
//	builder/      — graph families, the named catalog, degree sequences
//	traverse/     — BFS, DFS, cycle finding, girth
//	connectivity/ — components, blocks, cut vertices
//	paths/        — Dijkstra, Floyd–Warshall, diameter
//	matching/     — maximum matching
//	clique/       — cliques, covers, independence, coloring bounds
//	planar/       — embeddings, faces, triangulation
//	layout/       — 2D/3D vertex coordinates in several styles
//	dot/          — DOT subset reader and writer
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
// Dive into the package docs for complexity notes, error contracts, and
// worked examples.
//
//	go get github.com/katalvlaran/graphein
package graphein
