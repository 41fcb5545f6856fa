package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphein/core"
)

// buildPath creates an undirected path a-b-c-d.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New()
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "c", 0)
	g.AddEdge("c", "d", 0)
	return g
}

func TestAddVertex_DuplicateLabel(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("a"))
	assert.ErrorIs(t, g.AddVertex("a"), core.ErrDuplicateLabel)
	assert.Equal(t, 1, g.VertexCount())
}

func TestVertexIndex_MissingIsSentinel(t *testing.T) {
	g := core.New()
	assert.Equal(t, -1, g.VertexIndex("nope"))
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, 0, g.VertexIndex("a"))
}

func TestAddEdge_UndirectedIsSymmetric(t *testing.T) {
	g := buildPath(t)
	b := g.VertexIndex("b")
	c := g.VertexIndex("c")
	assert.True(t, g.HasEdge(b, c))
	assert.True(t, g.HasEdge(c, b))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddEdge_DirectedSingleEntry(t *testing.T) {
	g := core.New(core.WithDirected())
	g.AddEdge("a", "b", 0)
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.OutDegree(0))
	assert.Equal(t, 1, g.InDegree(1))
	assert.Equal(t, 1, g.Degree(0))
}

func TestAddEdge_UnweightedIgnoresWeight(t *testing.T) {
	g := core.New()
	g.AddEdge("a", "b", 42)
	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
}

func TestSetWeight_UnweightedRejected(t *testing.T) {
	g := core.New()
	g.AddEdge("a", "b", 0)
	assert.ErrorIs(t, g.SetWeight(0, 1, 3), core.ErrNotWeighted)
}

func TestRemoveEdge(t *testing.T) {
	g := buildPath(t)
	require.NoError(t, g.RemoveEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))
	assert.Equal(t, 2, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge(1, 2), core.ErrEdgeNotFound)
}

func TestRemoveVertex_RenumbersAndDropsIncident(t *testing.T) {
	g := buildPath(t) // a-b-c-d at indices 0..3
	require.NoError(t, g.RemoveVertex("b"))

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []string{"a", "c", "d"}, g.Labels())
	// indices shifted down: c is now 1, d is now 2
	assert.Equal(t, 1, g.VertexIndex("c"))
	assert.Equal(t, 2, g.VertexIndex("d"))
	// a lost its only edge, c-d survived under new indices
	assert.Equal(t, 0, g.Degree(0))
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveVertices_ValidatesBeforeMutating(t *testing.T) {
	g := buildPath(t)
	err := g.RemoveVertices([]string{"a", "zzz"})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Equal(t, 4, g.VertexCount(), "failed batch must not mutate")
}

func TestNewFromAdjacencyMatrix_Shape(t *testing.T) {
	_, err := core.NewFromAdjacencyMatrix([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, core.ErrNonSquareMatrix)

	_, err = core.NewFromAdjacencyMatrix([][]float64{{0, 1}, {0, 0}})
	assert.ErrorIs(t, err, core.ErrAsymmetricMatrix)

	// asymmetric is fine when directed
	g, err := core.NewFromAdjacencyMatrix([][]float64{{0, 1}, {0, 0}}, core.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNewFromAdjacencyMatrix_UndirectedCount(t *testing.T) {
	// 4 undirected edges: 0-1, 0-2, 1-3, 2-3
	m := [][]float64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	}
	g, err := core.NewFromAdjacencyMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.False(t, g.Directed())
	assert.False(t, g.Weighted())
}

func TestNewFromAdjacencyMatrix_NonUnitEntriesImplyWeights(t *testing.T) {
	m := [][]float64{
		{0, 2.5},
		{2.5, 0},
	}
	g, err := core.NewFromAdjacencyMatrix(m)
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)
}

func TestNewFromEdges_BadEndpointRejectedUpfront(t *testing.T) {
	_, err := core.NewFromEdges(2, []core.Edge{{From: 0, To: 5}})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdges_UndirectedEachPairOnce(t *testing.T) {
	g := buildPath(t)
	edges := g.Edges()
	require.Len(t, edges, 3)
	for _, e := range edges {
		assert.LessOrEqual(t, e.From, e.To)
	}
}

func TestDegreeSequence(t *testing.T) {
	g := buildPath(t)
	assert.Equal(t, []int{1, 2, 2, 1}, g.DegreeSequence())
	assert.Equal(t, 1, g.MinDegree())
	assert.Equal(t, 2, g.MaxDegree())
	assert.False(t, g.IsRegular(2))
}

func TestMatrices(t *testing.T) {
	g := core.New(core.WithWeighted())
	g.AddEdge("a", "b", 3)
	g.AddEdge("b", "c", 4)

	adj := g.AdjacencyMatrix()
	assert.Equal(t, 1.0, adj[0][1])
	assert.Equal(t, 1.0, adj[1][0])
	assert.Equal(t, 0.0, adj[0][2])

	w, err := g.WeightMatrix()
	require.NoError(t, err)
	assert.Equal(t, 3.0, w[0][1])
	assert.Equal(t, 4.0, w[2][1])

	inc := g.IncidenceMatrix()
	require.Len(t, inc, 3)
	require.Len(t, inc[0], 2)
	assert.Equal(t, 1.0, inc[0][0])
	assert.Equal(t, 1.0, inc[1][0])
}

func TestWeightMatrix_UnweightedRejected(t *testing.T) {
	g := buildPath(t)
	_, err := g.WeightMatrix()
	assert.ErrorIs(t, err, core.ErrNotWeighted)
}

func TestAttributes_AllGranularities(t *testing.T) {
	g := buildPath(t)

	g.SetGraphAttribute(core.KeyColor, core.Number(7))
	v, ok := g.GraphAttribute(core.KeyColor)
	require.True(t, ok)
	n, _ := v.AsNumber()
	assert.Equal(t, 7.0, n)
	assert.True(t, g.DiscardGraphAttribute(core.KeyColor))
	assert.False(t, g.DiscardGraphAttribute(core.KeyColor))

	g.SetVertexAttribute(0, core.KeyColor, core.Number(2))
	v, ok = g.VertexAttribute(0, core.KeyColor)
	require.True(t, ok)
	n, _ = v.AsNumber()
	assert.Equal(t, 2.0, n)

	require.NoError(t, g.SetEdgeAttribute(0, 1, core.KeyColor, core.Number(5)))
	// undirected aliasing: visible from the reverse orientation
	v, present, err := g.EdgeAttribute(1, 0, core.KeyColor)
	require.NoError(t, err)
	require.True(t, present)
	n, _ = v.AsNumber()
	assert.Equal(t, 5.0, n)

	_, _, err = g.EdgeAttribute(0, 3, core.KeyColor)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestTagRegistry(t *testing.T) {
	g := core.New()
	k1 := g.RegisterTag("shape")
	k2 := g.RegisterTag("phase")
	assert.GreaterOrEqual(t, int(k1), int(core.KeyUser))
	assert.NotEqual(t, k1, k2)
	assert.Equal(t, k1, g.RegisterTag("shape"), "re-registration is stable")

	got, err := g.TagKey("phase")
	require.NoError(t, err)
	assert.Equal(t, k2, got)

	_, err = g.TagKey("missing")
	assert.ErrorIs(t, err, core.ErrUnknownTag)

	tag, err := g.TagOf(k1)
	require.NoError(t, err)
	assert.Equal(t, "shape", tag)
}

func TestTagRegistry_CarriedByClone(t *testing.T) {
	g := core.New()
	k := g.RegisterTag("shape")
	g.AddEdge("a", "b", 0)
	c := g.Clone()
	got, err := c.TagKey("shape")
	require.NoError(t, err)
	assert.Equal(t, k, got)
}

func TestValue_Variants(t *testing.T) {
	assert.True(t, core.Number(1.5).Equal(core.Number(1.5)))
	assert.False(t, core.Number(1).Equal(core.Str("1")))
	assert.True(t, core.Point(1, 2).Equal(core.Point(1, 2)))
	assert.False(t, core.Point(1, 2).Equal(core.Point(1, 2, 3)))
	assert.Equal(t, "1.5", core.Number(1.5).String())
	assert.Equal(t, "true", core.Bool(true).String())
	assert.Equal(t, "(1,2)", core.Point(1, 2).String())
}
