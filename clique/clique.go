// Pivoted clique enumeration and the greedy clique cover.
package clique

import (
	"errors"
	"sort"

	"github.com/katalvlaran/graphein/core"
)

// Sentinel errors for clique operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrDirected is returned when the input graph is directed.
	ErrDirected = errors.New("clique: graph must be undirected")
)

// enumerator carries the adjacency snapshot of one search. adj is a dense
// V×V membership table so set intersections cost O(V).
type enumerator struct {
	n    int
	adj  [][]bool
	out  [][]int
	best []int
	// bound mode: stop expanding branches that cannot beat best
	bounded bool
}

func newEnumerator(g *core.Graph, bounded bool) *enumerator {
	n := g.VertexCount()
	e := &enumerator{n: n, adj: make([][]bool, n), bounded: bounded}
	for i := 0; i < n; i++ {
		e.adj[i] = make([]bool, n)
		for _, j := range g.Neighbors(i) {
			if j != i {
				e.adj[i][j] = true
			}
		}
	}
	return e
}

// expand is the pivoted backtracking step over (R = current clique,
// P = candidates, X = excluded). A branch terminates when P and X are
// empty: R is then maximal.
func (e *enumerator) expand(r, p, x []int) {
	if len(p) == 0 && len(x) == 0 {
		if !e.bounded {
			e.out = append(e.out, append([]int(nil), r...))
		}
		if len(r) > len(e.best) {
			e.best = append(e.best[:0], r...)
		}
		return
	}
	if e.bounded && len(r)+len(p) <= len(e.best) {
		return // cannot beat the incumbent
	}
	// Tomita pivot: the u ∈ P∪X with most neighbors in P, so branching is
	// limited to P \ N(u).
	pivot := -1
	pivotDeg := -1
	for _, cand := range [][]int{p, x} {
		for _, u := range cand {
			deg := 0
			for _, v := range p {
				if e.adj[u][v] {
					deg++
				}
			}
			if deg > pivotDeg {
				pivot, pivotDeg = u, deg
			}
		}
	}
	branch := make([]int, 0, len(p)-pivotDeg)
	for _, v := range p {
		if pivot == -1 || !e.adj[pivot][v] {
			branch = append(branch, v)
		}
	}
	for _, v := range branch {
		var np, nx []int
		for _, w := range p {
			if e.adj[v][w] {
				np = append(np, w)
			}
		}
		for _, w := range x {
			if e.adj[v][w] {
				nx = append(nx, w)
			}
		}
		e.expand(append(r, v), np, nx)
		// move v from P to X
		p = remove(p, v)
		x = append(x, v)
	}
}

// remove deletes the first occurrence of v, preserving order.
func remove(s []int, v int) []int {
	for i, w := range s {
		if w == v {
			return append(append([]int(nil), s[:i]...), s[i+1:]...)
		}
	}
	return s
}

// validate rejects nil and directed inputs.
func validate(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Directed() {
		return ErrDirected
	}
	return nil
}

// MaximalCliques lists every maximal clique of g, each sorted ascending;
// the list is ordered by first branch taken (deterministic for a fixed
// graph). Isolated vertices form singleton cliques.
// Complexity: O(3^(V/3)) worst case.
func MaximalCliques(g *core.Graph) ([][]int, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	e := newEnumerator(g, false)
	if e.n == 0 {
		return nil, nil
	}
	p := make([]int, e.n)
	for i := range p {
		p[i] = i
	}
	e.expand(nil, p, nil)
	for _, c := range e.out {
		sort.Ints(c)
	}
	return e.out, nil
}

// MaximumClique returns one largest clique of g, sorted ascending
// (empty for the empty graph).
// Complexity: exponential worst case, pruned branch-and-bound.
func MaximumClique(g *core.Graph) ([]int, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	e := newEnumerator(g, true)
	p := make([]int, e.n)
	for i := range p {
		p[i] = i
	}
	e.expand(nil, p, nil)
	best := append([]int(nil), e.best...)
	sort.Ints(best)
	return best, nil
}

// CliqueNumber returns the size of a maximum clique.
func CliqueNumber(g *core.Graph) (int, error) {
	c, err := MaximumClique(g)
	if err != nil {
		return 0, err
	}
	return len(c), nil
}

// IsClique reports whether the given vertices are pairwise adjacent.
// Complexity: O(len(vs)²).
func IsClique(g *core.Graph, vs []int) (bool, error) {
	if err := validate(g); err != nil {
		return false, err
	}
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if vs[i] == vs[j] || !g.HasEdge(vs[i], vs[j]) {
				return false, nil
			}
		}
	}
	return true, nil
}

// Cover partitions the vertices of g into cliques by repeatedly
// extracting a maximum clique from the remaining induced subgraph.
// Greedy: the result is a valid cover but not necessarily a minimum one.
//
// k caps the number of cliques; k ≤ 0 means no cap. When vertices remain
// after k cliques the partial cover is returned with ok=false — an
// expected outcome, not an error.
func Cover(g *core.Graph, k int) ([][]int, bool, error) {
	if err := validate(g); err != nil {
		return nil, false, err
	}
	remaining := make([]int, g.VertexCount())
	for i := range remaining {
		remaining[i] = i
	}
	var cover [][]int
	for len(remaining) > 0 {
		if k > 0 && len(cover) == k {
			return cover, false, nil
		}
		sub, err := g.InducedSubgraph(remaining)
		if err != nil {
			return nil, false, err
		}
		sc, err := MaximumClique(sub)
		if err != nil {
			return nil, false, err
		}
		// translate subgraph indices back and shrink the remainder
		clq := make([]int, len(sc))
		inClique := make(map[int]bool, len(sc))
		for i, si := range sc {
			clq[i] = remaining[si]
			inClique[remaining[si]] = true
		}
		sort.Ints(clq)
		cover = append(cover, clq)
		next := remaining[:0]
		for _, v := range remaining {
			if !inClique[v] {
				next = append(next, v)
			}
		}
		remaining = next
	}
	return cover, true, nil
}

// CoverNumber returns the size of the greedy clique cover.
func CoverNumber(g *core.Graph) (int, error) {
	cover, _, err := Cover(g, 0)
	if err != nil {
		return 0, err
	}
	return len(cover), nil
}

// ChromaticNumber colors g through the documented reduction: a clique
// cover of the complement is a proper coloring (one color per clique).
// The greedy cover makes this an upper bound in general; it is exact on
// the perfect and small graphs it is intended for.
func ChromaticNumber(g *core.Graph) (int, error) {
	if err := validate(g); err != nil {
		return 0, err
	}
	return CoverNumber(g.Complement())
}

// MaximumIndependentSet returns a largest independent set through the
// reduction: a maximum clique of the complement.
func MaximumIndependentSet(g *core.Graph) ([]int, error) {
	if err := validate(g); err != nil {
		return nil, err
	}
	return MaximumClique(g.Complement())
}

// IndependenceNumber returns the size of a maximum independent set.
func IndependenceNumber(g *core.Graph) (int, error) {
	s, err := MaximumIndependentSet(g)
	if err != nil {
		return 0, err
	}
	return len(s), nil
}
