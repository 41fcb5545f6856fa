// Cut vertices, biconnected components (blocks), and the k-connectivity
// predicates. One low-link DFS serves both queries; an explicit edge stack
// is popped back at each articulation point to emit a block.
package connectivity

import "github.com/katalvlaran/graphein/core"

// blockState is the per-call scratch of the block/cut-vertex DFS.
type blockState struct {
	g         *core.Graph
	disc      []int
	low       []int
	children  []int
	isCut     []bool
	edgeStack []core.Edge
	blocks    [][]core.Edge
	clock     int
}

// bframe is one explicit DFS stack entry.
type bframe struct {
	v      int
	parent int
	next   int
}

// runBlockDFS computes cut-vertex marks and blocks for the whole graph
// (direction ignored).
func runBlockDFS(g *core.Graph) *blockState {
	u := undirectedView(g)
	n := u.VertexCount()
	s := &blockState{
		g:        u,
		disc:     make([]int, n),
		low:      make([]int, n),
		children: make([]int, n),
		isCut:    make([]bool, n),
	}
	for i := 0; i < n; i++ {
		s.disc[i] = -1
		s.low[i] = -1
	}
	for root := 0; root < n; root++ {
		if s.disc[root] == -1 {
			s.dfs(root)
		}
	}
	return s
}

// dfs walks one DFS tree with an explicit stack, folding low-links on the
// way back up and emitting a block whenever a child cannot reach above its
// parent.
func (s *blockState) dfs(root int) {
	s.discover(root)
	stack := []bframe{{v: root, parent: -1}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		nbrs := s.g.Neighbors(top.v)
		if top.next < len(nbrs) {
			n := nbrs[top.next]
			top.next++
			if n == top.v {
				continue // self-loop: never part of a block
			}
			if s.disc[n] == -1 {
				// tree edge
				s.edgeStack = append(s.edgeStack, blockEdge(top.v, n))
				s.children[top.v]++
				s.discover(n)
				stack = append(stack, bframe{v: n, parent: top.v})
				continue
			}
			if n != top.parent && s.disc[n] < s.disc[top.v] {
				// back edge to an ancestor
				s.edgeStack = append(s.edgeStack, blockEdge(top.v, n))
				if s.disc[n] < s.low[top.v] {
					s.low[top.v] = s.disc[n]
				}
			}
			continue
		}
		// post-order: fold into the parent, emit a block at articulations
		stack = stack[:len(stack)-1]
		if top.parent == -1 {
			continue
		}
		p := top.parent
		if s.low[top.v] < s.low[p] {
			s.low[p] = s.low[top.v]
		}
		if s.low[top.v] >= s.disc[p] {
			s.popBlock(p, top.v)
			// the root is a cut vertex iff it has more than one DFS child;
			// any other block boundary vertex is one unconditionally
			if len(stack) > 1 || s.children[p] > 1 {
				s.isCut[p] = true
			}
		}
	}
}

// discover stamps discovery time and low-link for v.
func (s *blockState) discover(v int) {
	s.disc[v] = s.clock
	s.low[v] = s.clock
	s.clock++
}

// popBlock pops the edge stack down to and including edge (p,c), emitting
// the popped edges as one block.
func (s *blockState) popBlock(p, c int) {
	boundary := blockEdge(p, c)
	var block []core.Edge
	for len(s.edgeStack) > 0 {
		e := s.edgeStack[len(s.edgeStack)-1]
		s.edgeStack = s.edgeStack[:len(s.edgeStack)-1]
		block = append(block, e)
		if e == boundary {
			break
		}
	}
	s.blocks = append(s.blocks, block)
}

// blockEdge normalizes an undirected edge to From ≤ To.
func blockEdge(i, j int) core.Edge {
	if j < i {
		i, j = j, i
	}
	return core.Edge{From: i, To: j}
}

// CutVertices returns the articulation points of g (direction ignored),
// in ascending index order.
// Complexity: O(V+E).
func CutVertices(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s := runBlockDFS(g)
	var cuts []int
	for v, is := range s.isCut {
		if is {
			cuts = append(cuts, v)
		}
	}
	return cuts, nil
}

// Blocks returns the biconnected components of g as edge sets; two blocks
// share at most one vertex (a cut vertex). Isolated vertices yield no
// block.
// Complexity: O(V+E).
func Blocks(g *core.Graph) ([][]core.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return runBlockDFS(g).blocks, nil
}

// IsBiconnected reports whether g is connected and free of cut vertices.
// The single vertex and the single edge count as biconnected.
// Complexity: O(V+E).
func IsBiconnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	connected, err := IsConnected(g)
	if err != nil || !connected {
		return false, err
	}
	s := runBlockDFS(g)
	for _, is := range s.isCut {
		if is {
			return false, nil
		}
	}
	return true, nil
}

// IsTriconnected reports whether g is biconnected and stays biconnected
// (or becomes trivial, ≤2 vertices) after removing any single vertex.
// This is the naive removal re-test; no SPQR machinery.
// Complexity: O(V·(V+E)).
func IsTriconnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	bi, err := IsBiconnected(g)
	if err != nil || !bi {
		return false, err
	}
	n := g.VertexCount()
	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		rest = rest[:0]
		for w := 0; w < n; w++ {
			if w != v {
				rest = append(rest, w)
			}
		}
		sub, err := g.InducedSubgraph(rest)
		if err != nil {
			return false, err
		}
		if sub.VertexCount() <= 2 {
			continue
		}
		bi, err = IsBiconnected(sub)
		if err != nil {
			return false, err
		}
		if !bi {
			return false, nil
		}
	}
	return true, nil
}
