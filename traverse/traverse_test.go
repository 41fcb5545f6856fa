package traverse_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphein/core"
	"github.com/katalvlaran/graphein/traverse"
)

// buildChain creates a directed chain 0→1→…→n-1.
func buildChain(n int) *core.Graph {
	g := core.New(core.WithDirected())
	for i := 0; i < n-1; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}
	return g
}

// buildCycle creates the undirected cycle on n vertices.
func buildCycle(n int) *core.Graph {
	g := core.New()
	for i := 0; i < n; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n), 0)
	}
	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := traverse.DFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrGraphNil)
}

func TestDFS_RootOutOfRange(t *testing.T) {
	g := core.New()
	_, err := traverse.DFS(g, 0)
	assert.ErrorIs(t, err, traverse.ErrRootNotFound)
}

func TestDFS_Chain(t *testing.T) {
	g := buildChain(4)
	res, err := traverse.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Disc)
	assert.Equal(t, []int{-1, 0, 1, 2}, res.Parent)
	assert.Equal(t, 3, res.Depth[3])
}

func TestDFS_VisitsReachableOnce(t *testing.T) {
	g := buildCycle(5)
	count := make(map[int]int)
	res, err := traverse.DFS(g, 0, traverse.WithOnVisit(func(v, _ int) error {
		count[v]++
		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, res.Order, 5)
	for v, c := range count {
		assert.Equal(t, 1, c, "vertex %d visited more than once", v)
	}
}

func TestDFS_LowLinkOnCycle(t *testing.T) {
	g := buildCycle(4)
	res, err := traverse.DFS(g, 0)
	require.NoError(t, err)
	// every vertex of a cycle reaches the root via one back edge
	for v := 0; v < 4; v++ {
		assert.Equal(t, 0, res.Low[v], "low-link of %d", v)
	}
}

func TestDFS_LowLinkOnTree(t *testing.T) {
	// star: 0-1, 0-2 — no back edges, low == disc
	g := core.New()
	g.AddEdge("c", "l1", 0)
	g.AddEdge("c", "l2", 0)
	res, err := traverse.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, res.Disc, res.Low)
}

func TestDFS_HookErrorAborts(t *testing.T) {
	g := buildChain(3)
	boom := errors.New("boom")
	_, err := traverse.DFS(g, 0, traverse.WithOnVisit(func(v, _ int) error {
		if v == 1 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(5)
	res, err := traverse.DFS(g, 0, traverse.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.False(t, res.Visited[3])
}

func TestDFS_NegativeMaxDepth(t *testing.T) {
	_, err := traverse.DFS(buildChain(2), 0, traverse.WithMaxDepth(-1))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

func TestBFS_DepthIsDistance(t *testing.T) {
	g := buildCycle(6)
	res, err := traverse.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 2, 1}, res.Depth)
	assert.Len(t, res.Order, 6)
	assert.Equal(t, 0, res.Order[0])
}

func TestBFS_FilterNeighbor(t *testing.T) {
	g := buildCycle(4)
	res, err := traverse.BFS(g, 0, traverse.WithFilterNeighbor(func(_, n int) bool {
		return n != 1 // cut off one direction of the cycle
	}))
	require.NoError(t, err)
	assert.False(t, res.Visited[1])
	assert.Equal(t, 1, res.Depth[3])
	assert.Equal(t, 2, res.Depth[2])
}

func TestBFS_DisconnectedStaysLocal(t *testing.T) {
	g := core.New()
	g.AddEdge("a", "b", 0)
	g.AddEdge("x", "y", 0)
	res, err := traverse.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.False(t, res.Visited[2])
	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, traverse.ErrNoPath)
}

func TestPathTo(t *testing.T) {
	g := buildChain(4)
	res, err := traverse.BFS(g, 0)
	require.NoError(t, err)
	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestFindCycle_Acyclic(t *testing.T) {
	_, ok := traverse.FindCycle(buildChain(5))
	assert.False(t, ok)

	tree := core.New()
	tree.AddEdge("a", "b", 0)
	tree.AddEdge("a", "c", 0)
	_, ok = traverse.FindCycle(tree)
	assert.False(t, ok)
}

func TestFindCycle_Undirected(t *testing.T) {
	g := buildCycle(5)
	cyc, ok := traverse.FindCycle(g)
	require.True(t, ok)
	require.Len(t, cyc, 5)
	// consecutive cycle vertices must be adjacent, and the ends close up
	for i := range cyc {
		assert.True(t, g.HasEdge(cyc[i], cyc[(i+1)%len(cyc)]))
	}
}

func TestFindCycle_Directed(t *testing.T) {
	g := core.New(core.WithDirected())
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "c", 0)
	g.AddEdge("c", "a", 0)
	g.AddEdge("c", "d", 0)
	cyc, ok := traverse.FindCycle(g)
	require.True(t, ok)
	require.Len(t, cyc, 3)
	for i := range cyc {
		assert.True(t, g.HasEdge(cyc[i], cyc[(i+1)%len(cyc)]))
	}
}

func TestFindCycle_TwoVertexDirected(t *testing.T) {
	g := core.New(core.WithDirected())
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "a", 0)
	cyc, ok := traverse.FindCycle(g)
	require.True(t, ok)
	assert.Len(t, cyc, 2)
}

func TestFindPath(t *testing.T) {
	g := buildCycle(6)
	path, err := traverse.FindPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, len(path), "shortest path around C6")
	assert.Equal(t, 0, path[0])
	assert.Equal(t, 3, path[len(path)-1])
}

func TestGirth_C5(t *testing.T) {
	gir, ok := traverse.Girth(buildCycle(5))
	require.True(t, ok)
	assert.Equal(t, 5, gir)
}

func TestGirth_Acyclic(t *testing.T) {
	_, ok := traverse.Girth(buildChain(4))
	assert.False(t, ok)
}

func TestGirth_TriangleWithTail(t *testing.T) {
	g := core.New()
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "c", 0)
	g.AddEdge("c", "a", 0)
	g.AddEdge("c", "d", 0)
	gir, ok := traverse.Girth(g)
	require.True(t, ok)
	assert.Equal(t, 3, gir)
}

func TestOddGirth(t *testing.T) {
	// C6 is bipartite: no odd cycle
	_, ok := traverse.OddGirth(buildCycle(6))
	assert.False(t, ok)

	gir, ok := traverse.OddGirth(buildCycle(5))
	require.True(t, ok)
	assert.Equal(t, 5, gir)

	// C6 plus a chord creating a triangle
	g := buildCycle(6)
	g.AddEdgeIndex(0, 2, 1)
	gir, ok = traverse.OddGirth(g)
	require.True(t, ok)
	assert.Equal(t, 3, gir)
}
