package paths_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphein/core"
	"github.com/katalvlaran/graphein/paths"
)

// buildWeightedDiamond: a→b(1), a→c(4), b→c(2), c→d(1), b→d(5).
// Shortest a→d is a-b-c-d with cost 4.
func buildWeightedDiamond() *core.Graph {
	g := core.New(core.WithWeighted())
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 4)
	g.AddEdge("b", "c", 2)
	g.AddEdge("c", "d", 1)
	g.AddEdge("b", "d", 5)
	return g
}

func TestDijkstra_Errors(t *testing.T) {
	_, err := paths.Dijkstra(nil, 0, nil)
	assert.ErrorIs(t, err, paths.ErrGraphNil)

	g := buildWeightedDiamond()
	_, err = paths.Dijkstra(g, 9, nil)
	assert.ErrorIs(t, err, paths.ErrVertexNotFound)

	_, err = paths.Dijkstra(g, 0, []int{99})
	assert.ErrorIs(t, err, paths.ErrVertexNotFound)

	neg := core.New(core.WithWeighted())
	neg.AddEdge("a", "b", -2)
	_, err = paths.Dijkstra(neg, 0, nil)
	assert.ErrorIs(t, err, paths.ErrNegativeWeight)
}

func TestDijkstra_WeightedDiamond(t *testing.T) {
	g := buildWeightedDiamond()
	res, err := paths.Dijkstra(g, 0, nil)
	require.NoError(t, err)
	// a=0 b=1 c=2 d=3
	assert.Equal(t, []float64{0, 1, 3, 4}, res.Dist)
	assert.Equal(t, []int{0, 1, 2, 3}, res.PathTo(3))
}

func TestDijkstra_UnweightedCountsHops(t *testing.T) {
	g := core.New()
	for i := 0; i < 5; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}
	res, err := paths.Dijkstra(g, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, res.Dist)
}

func TestDijkstra_UnreachableIsInf(t *testing.T) {
	g := core.New()
	g.AddEdge("a", "b", 0)
	require.NoError(t, g.AddVertex("z"))
	res, err := paths.Dijkstra(g, 0, nil)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Dist[2], 1))
	assert.Nil(t, res.PathTo(2))
}

func TestDijkstra_TargetsStopEarly(t *testing.T) {
	// long path; asking only for an early target must still give the exact
	// distance for it, while later vertices may stay unsettled (+Inf).
	g := core.New()
	for i := 0; i < 10; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}
	res, err := paths.Dijkstra(g, 0, []int{2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist[2])
	assert.Equal(t, []int{0, 1, 2}, res.PathTo(2))
}

func TestDijkstra_DirectedRespectsOrientation(t *testing.T) {
	g := core.New(core.WithDirected(), core.WithWeighted())
	g.AddEdge("a", "b", 3)
	g.AddEdge("b", "a", 1)
	res, err := paths.Dijkstra(g, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Dist[1])

	res, err = paths.Dijkstra(g, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Dist[0])
}

func TestDijkstra_MaxDistanceBound(t *testing.T) {
	g := core.New()
	for i := 0; i < 6; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}
	res, err := paths.Dijkstra(g, 0, nil, paths.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Dist[2])
	assert.True(t, math.IsInf(res.Dist[5], 1), "beyond the bound stays unexplored")
}

func TestFloydWarshall_MatchesDijkstra(t *testing.T) {
	g := buildWeightedDiamond()
	all, err := paths.FloydWarshall(g)
	require.NoError(t, err)
	for s := 0; s < g.VertexCount(); s++ {
		res, err := paths.Dijkstra(g, s, nil)
		require.NoError(t, err)
		assert.Equal(t, res.Dist, all[s], "row %d", s)
	}
}

func TestFloydWarshall_NegativeWeightAllowed(t *testing.T) {
	g := core.New(core.WithDirected(), core.WithWeighted())
	g.AddEdge("a", "b", 4)
	g.AddEdge("a", "c", 1)
	g.AddEdge("c", "b", -2)
	all, err := paths.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, -1.0, all[0][1], "a-c-b beats the direct edge")
}

func TestDiameter(t *testing.T) {
	// path on 4 vertices: diameter 3
	g := core.New()
	for i := 0; i < 3; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}
	d, ok, err := paths.Diameter(g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, d)

	// disconnected: ok=false
	require.NoError(t, g.AddVertex("z"))
	_, ok, err = paths.Diameter(g)
	require.NoError(t, err)
	assert.False(t, ok)
}
