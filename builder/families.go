// Parametric graph families.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphein/core"
)

// newN returns an undirected graph with n decimal-labeled vertices.
func newN(n int) *core.Graph {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	g, _ := core.NewFromLabels(labels) // generated labels are distinct
	return g
}

// Cycle returns the cycle graph C_n, n ≥ 3.
func Cycle(n int) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: Cycle(%d), need n >= 3", ErrTooFewVertices, n)
	}
	g := newN(n)
	for i := 0; i < n; i++ {
		g.AddEdgeIndex(i, (i+1)%n, 0)
	}
	return g, nil
}

// Path returns the path graph P_n, n ≥ 1.
func Path(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Path(%d), need n >= 1", ErrTooFewVertices, n)
	}
	g := newN(n)
	for i := 0; i+1 < n; i++ {
		g.AddEdgeIndex(i, i+1, 0)
	}
	return g, nil
}

// Complete returns the complete graph K_n, n ≥ 1.
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: Complete(%d), need n >= 1", ErrTooFewVertices, n)
	}
	g := newN(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdgeIndex(i, j, 0)
		}
	}
	return g, nil
}

// CompleteBipartite returns K_{m,n}: parts 0..m-1 and m..m+n-1.
func CompleteBipartite(m, n int) (*core.Graph, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("%w: CompleteBipartite(%d,%d), need m,n >= 1", ErrTooFewVertices, m, n)
	}
	g := newN(m + n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			g.AddEdgeIndex(i, m+j, 0)
		}
	}
	return g, nil
}

// Star returns K_{1,n}: hub 0 with n leaves, n ≥ 1.
func Star(n int) (*core.Graph, error) {
	return CompleteBipartite(1, n)
}

// Wheel returns W_n: the cycle 0..n-1 plus hub n, n ≥ 3.
func Wheel(n int) (*core.Graph, error) {
	g, err := Cycle(n)
	if err != nil {
		return nil, fmt.Errorf("%w: Wheel(%d), need n >= 3", ErrTooFewVertices, n)
	}
	hub := g.EnsureVertex(strconv.Itoa(n))
	for i := 0; i < n; i++ {
		g.AddEdgeIndex(hub, i, 0)
	}
	return g, nil
}

// Hypercube returns Q_d on 2^d vertices; vertices adjacent when their
// indices differ in one bit. d ≥ 1.
func Hypercube(d int) (*core.Graph, error) {
	if d < 1 {
		return nil, fmt.Errorf("%w: Hypercube(%d), need d >= 1", ErrTooFewVertices, d)
	}
	n := 1 << d
	g := newN(n)
	for i := 0; i < n; i++ {
		for b := 0; b < d; b++ {
			j := i ^ (1 << b)
			if j > i {
				g.AddEdgeIndex(i, j, 0)
			}
		}
	}
	return g, nil
}

// Grid returns the rows×cols lattice; vertex (r,c) has index r·cols+c.
func Grid(rows, cols int) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: Grid(%d,%d), need rows,cols >= 1", ErrTooFewVertices, rows, cols)
	}
	g := newN(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := r*cols + c
			if c+1 < cols {
				g.AddEdgeIndex(v, v+1, 0)
			}
			if r+1 < rows {
				g.AddEdgeIndex(v, v+cols, 0)
			}
		}
	}
	return g, nil
}

// Petersen returns the generalized Petersen graph GP(n,k): outer cycle
// 0..n-1, inner star polygon n..2n-1 with step k, and the spokes.
// Requires n ≥ 3 and 1 ≤ k with 2k < n.
func Petersen(n, k int) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: Petersen(%d,%d), need n >= 3", ErrTooFewVertices, n, k)
	}
	if k < 1 || 2*k >= n {
		return nil, fmt.Errorf("%w: Petersen(%d,%d), need 1 <= k and 2k < n", ErrBadParameter, n, k)
	}
	g := newN(2 * n)
	for i := 0; i < n; i++ {
		g.AddEdgeIndex(i, (i+1)%n, 0)     // outer cycle
		g.AddEdgeIndex(n+i, n+(i+k)%n, 0) // inner star polygon
		g.AddEdgeIndex(i, n+i, 0)         // spoke
	}
	return g, nil
}

// LCF builds the cubic Hamiltonian graph described by an LCF code: the
// Hamiltonian cycle on len(code)·reps vertices, plus the chord
// i → i+code[i mod len] for every vertex. Shifts divisible by n would be
// loops and are rejected.
func LCF(code []int, reps int) (*core.Graph, error) {
	if len(code) == 0 || reps < 1 {
		return nil, fmt.Errorf("%w: LCF needs a non-empty code and reps >= 1", ErrBadParameter)
	}
	n := len(code) * reps
	if n < 3 {
		return nil, fmt.Errorf("%w: LCF on %d vertices", ErrTooFewVertices, n)
	}
	for _, s := range code {
		if s%n == 0 {
			return nil, fmt.Errorf("%w: LCF shift %d is a multiple of %d", ErrBadParameter, s, n)
		}
	}
	g := newN(n)
	for i := 0; i < n; i++ {
		g.AddEdgeIndex(i, (i+1)%n, 0)
	}
	for i := 0; i < n; i++ {
		j := ((i+code[i%len(code)])%n + n) % n
		g.AddEdgeIndex(i, j, 0) // re-adding the mirrored chord is a no-op
	}
	return g, nil
}
