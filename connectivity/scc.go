// Tarjan strongly connected components with an explicit node stack.
package connectivity

import "github.com/katalvlaran/graphein/core"

// sccState is the per-call scratch of Tarjan's algorithm.
type sccState struct {
	g       *core.Graph
	disc    []int
	low     []int
	onStack []bool
	stack   []int
	comps   [][]int
	clock   int
}

// StronglyConnected returns the strongly connected components of g in
// reverse topological order of the condensation. On undirected graphs the
// symmetric adjacency makes every connected component one SCC.
// Complexity: O(V+E).
func StronglyConnected(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	s := &sccState{
		g:       g,
		disc:    make([]int, n),
		low:     make([]int, n),
		onStack: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		s.disc[i] = -1
		s.low[i] = -1
	}
	for root := 0; root < n; root++ {
		if s.disc[root] == -1 {
			s.strongconnect(root)
		}
	}
	return s.comps, nil
}

// strongconnect is the explicit-stack form of Tarjan's recursion: tree
// edges push a frame, back edges to on-stack vertices lower the low-link,
// and a component is emitted when a vertex's low-link equals its own
// discovery time.
func (s *sccState) strongconnect(root int) {
	type frame struct{ v, next int }
	s.push(root)
	call := []frame{{v: root}}
	for len(call) > 0 {
		top := &call[len(call)-1]
		nbrs := s.g.Neighbors(top.v)
		if top.next < len(nbrs) {
			n := nbrs[top.next]
			top.next++
			if s.disc[n] == -1 {
				s.push(n)
				call = append(call, frame{v: n})
				continue
			}
			if s.onStack[n] && s.disc[n] < s.low[top.v] {
				s.low[top.v] = s.disc[n]
			}
			continue
		}
		call = call[:len(call)-1]
		if len(call) > 0 {
			p := call[len(call)-1].v
			if s.low[top.v] < s.low[p] {
				s.low[p] = s.low[top.v]
			}
		}
		if s.low[top.v] == s.disc[top.v] {
			s.emit(top.v)
		}
	}
}

// push stamps v and places it on the node stack.
func (s *sccState) push(v int) {
	s.disc[v] = s.clock
	s.low[v] = s.clock
	s.clock++
	s.stack = append(s.stack, v)
	s.onStack[v] = true
}

// emit pops the node stack down to and including head, forming one SCC.
func (s *sccState) emit(head int) {
	var comp []int
	for {
		v := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[v] = false
		comp = append(comp, v)
		if v == head {
			break
		}
	}
	s.comps = append(s.comps, comp)
}

// IsStronglyConnected reports whether every vertex reaches every other
// respecting direction. The empty graph counts as strongly connected.
// Complexity: O(V+E).
func IsStronglyConnected(g *core.Graph) (bool, error) {
	comps, err := StronglyConnected(g)
	if err != nil {
		return false, err
	}
	return len(comps) <= 1, nil
}
