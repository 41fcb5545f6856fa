package connectivity_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphein/connectivity"
	"github.com/katalvlaran/graphein/core"
)

func buildCycle(n int) *core.Graph {
	g := core.New()
	for i := 0; i < n; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n), 0)
	}
	return g
}

// buildBowtie creates two triangles sharing vertex 0 ("bowtie"): the shared
// vertex is the unique cut vertex and each triangle is a block.
func buildBowtie() *core.Graph {
	g := core.New()
	g.AddEdge("m", "a1", 0)
	g.AddEdge("m", "a2", 0)
	g.AddEdge("a1", "a2", 0)
	g.AddEdge("m", "b1", 0)
	g.AddEdge("m", "b2", 0)
	g.AddEdge("b1", "b2", 0)
	return g
}

func TestComponents(t *testing.T) {
	g := core.New()
	g.AddEdge("a", "b", 0)
	g.AddEdge("c", "d", 0)
	require.NoError(t, g.AddVertex("lonely"))

	comps, err := connectivity.Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []int{0, 1}, comps[0])
	assert.ElementsMatch(t, []int{2, 3}, comps[1])
	assert.Equal(t, []int{4}, comps[2])

	ok, err := connectivity.IsConnected(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestComponents_DirectedIgnoresOrientation(t *testing.T) {
	g := core.New(core.WithDirected())
	g.AddEdge("a", "b", 0)
	g.AddEdge("c", "b", 0)
	comps, err := connectivity.Components(g)
	require.NoError(t, err)
	assert.Len(t, comps, 1)
}

func TestIsConnected_Empty(t *testing.T) {
	ok, err := connectivity.IsConnected(core.New())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCutVertices_None(t *testing.T) {
	cuts, err := connectivity.CutVertices(buildCycle(5))
	require.NoError(t, err)
	assert.Empty(t, cuts)
}

func TestCutVertices_Bowtie(t *testing.T) {
	g := buildBowtie()
	cuts, err := connectivity.CutVertices(g)
	require.NoError(t, err)
	assert.Equal(t, []int{g.VertexIndex("m")}, cuts)
}

func TestCutVertices_Path(t *testing.T) {
	g := core.New()
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "c", 0)
	g.AddEdge("c", "d", 0)
	cuts, err := connectivity.CutVertices(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, cuts, "interior path vertices are cut vertices")
}

func TestBlocks_Bowtie(t *testing.T) {
	blocks, err := connectivity.Blocks(buildBowtie())
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Len(t, blocks[0], 3)
	assert.Len(t, blocks[1], 3)
}

func TestBlocks_BridgeIsItsOwnBlock(t *testing.T) {
	g := buildCycle(3)
	g.AddEdge("2", "t", 0) // pendant bridge
	blocks, err := connectivity.Blocks(g)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	sizes := []int{len(blocks[0]), len(blocks[1])}
	assert.ElementsMatch(t, []int{1, 3}, sizes)
}

func TestIsBiconnected_MatchesCutVertices(t *testing.T) {
	for _, tc := range []struct {
		name string
		g    *core.Graph
		want bool
	}{
		{"cycle", buildCycle(5), true},
		{"bowtie", buildBowtie(), false},
		{"single edge", func() *core.Graph {
			g := core.New()
			g.AddEdge("a", "b", 0)
			return g
		}(), true},
		{"disconnected", func() *core.Graph {
			g := core.New()
			g.AddEdge("a", "b", 0)
			g.AddEdge("c", "d", 0)
			return g
		}(), false},
	} {
		got, err := connectivity.IsBiconnected(tc.g)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, got, tc.name)

		// the §-property: biconnected ⇔ no cut vertices (given connectivity, V≥3)
		if tc.g.VertexCount() >= 3 {
			cuts, err := connectivity.CutVertices(tc.g)
			require.NoError(t, err)
			conn, err := connectivity.IsConnected(tc.g)
			require.NoError(t, err)
			assert.Equal(t, got, conn && len(cuts) == 0, tc.name)
		}
	}
}

func TestIsTriconnected(t *testing.T) {
	// K4 is 3-connected
	k4 := core.New()
	labels := []string{"a", "b", "c", "d"}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			k4.AddEdge(labels[i], labels[j], 0)
		}
	}
	ok, err := connectivity.IsTriconnected(k4)
	require.NoError(t, err)
	assert.True(t, ok)

	// C5 is only 2-connected: removing one vertex leaves a path
	ok, err = connectivity.IsTriconnected(buildCycle(5))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStronglyConnected_Cycle(t *testing.T) {
	g := core.New(core.WithDirected())
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "c", 0)
	g.AddEdge("c", "a", 0)
	comps, err := connectivity.StronglyConnected(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []int{0, 1, 2}, comps[0])

	ok, err := connectivity.IsStronglyConnected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStronglyConnected_TwoComponents(t *testing.T) {
	// a↔b, and c hanging off: {a,b} and {c}
	g := core.New(core.WithDirected())
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "a", 0)
	g.AddEdge("b", "c", 0)
	comps, err := connectivity.StronglyConnected(g)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	// reverse topological order: the sink {c} is emitted first
	assert.Equal(t, []int{2}, comps[0])
	assert.ElementsMatch(t, []int{0, 1}, comps[1])
}

func TestStronglyConnected_UndirectedEqualsComponents(t *testing.T) {
	g := core.New()
	g.AddEdge("a", "b", 0)
	g.AddEdge("c", "d", 0)
	comps, err := connectivity.StronglyConnected(g)
	require.NoError(t, err)
	assert.Len(t, comps, 2)
}

func TestIsTree(t *testing.T) {
	tree := core.New()
	tree.AddEdge("r", "l", 0)
	tree.AddEdge("r", "rr", 0)
	ok, err := connectivity.IsTree(tree)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = connectivity.IsTree(buildCycle(5))
	require.NoError(t, err)
	assert.False(t, ok, "C5 is not a tree")

	forest := core.New()
	forest.AddEdge("a", "b", 0)
	forest.AddEdge("c", "d", 0)
	ok, err = connectivity.IsTree(forest)
	require.NoError(t, err)
	assert.False(t, ok, "disconnected")
	ok, err = connectivity.IsForest(forest)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = connectivity.IsForest(buildCycle(3))
	require.NoError(t, err)
	assert.False(t, ok)
}
