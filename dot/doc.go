// Package dot reads and writes a strict subset of the DOT graph language.
//
// What:
//
//   - Read parses `graph`/`digraph` files: identifiers, numerals, quoted
//     strings, edge chains (`a -- b -- c`), attribute lists in brackets,
//     `node`/`edge` default-attribute statements (accepted and ignored),
//     graph-level `key=value` assignments, `strict` (accepted and
//     ignored), and `//`, `#` and `/* */` comments. Parsing is strict:
//     any malformed input yields an ErrSyntax-wrapped error and no graph,
//     never a partially built one. The edge operator must match the graph
//     kind — `--` under graph, `->` under digraph — or ErrEdgeOp.
//   - A `weight=<number>` edge attribute makes the graph weighted; every
//     other `key=value` pair is registered as a user tag and stored as a
//     number, boolean, or string attribute at the matching granularity.
//   - Write emits the same shape: vertex statements in index order, then
//     edge statements; reading it back reproduces a graph equal to the
//     original (core.Equal).
//   - ReadFile and WriteFile are the only file-system touchpoints.
//
// Subgraphs, ports, and HTML strings are outside the subset and are
// rejected as syntax errors.
//
// Errors:
//
//   - ErrSyntax  malformed token or statement (wrapped with the line)
//   - ErrEdgeOp  edge operator contradicts the graph kind
package dot
