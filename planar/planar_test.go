package planar_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphein/core"
	"github.com/katalvlaran/graphein/planar"
)

func buildCycle(n int) *core.Graph {
	g := core.New()
	for i := 0; i < n; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%n), 0)
	}
	return g
}

func buildComplete(n int) *core.Graph {
	g := core.New()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), 0)
		}
	}
	return g
}

// eulerCheck: V - E + F = 2 for a connected embedded graph, and every
// edge is walked exactly twice over all faces.
func eulerCheck(t *testing.T, g *core.Graph, emb *planar.Embedding) {
	t.Helper()
	assert.Equal(t, 2, g.VertexCount()-g.EdgeCount()+len(emb.Faces))
	total := 0
	for _, f := range emb.Faces {
		total += len(f)
	}
	assert.Equal(t, 2*g.EdgeCount(), total, "face walks cover each edge twice")
}

func TestEmbed_NilGraph(t *testing.T) {
	_, err := planar.Embed(nil)
	assert.ErrorIs(t, err, planar.ErrGraphNil)
}

func TestEmbed_SingleVertex(t *testing.T) {
	g := core.New()
	require.NoError(t, g.AddVertex("a"))
	emb, err := planar.Embed(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, emb.Faces)
}

func TestEmbed_Tree_OneFace(t *testing.T) {
	g := core.New()
	for i := 0; i < 3; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
	}
	emb, err := planar.Embed(g)
	require.NoError(t, err)
	require.Len(t, emb.Faces, 1)
	assert.Len(t, emb.Faces[0], 6, "the single face walks every edge twice")
	eulerCheck(t, g, emb)
}

func TestEmbed_Cycle_TwoFaces(t *testing.T) {
	g := buildCycle(5)
	emb, err := planar.Embed(g)
	require.NoError(t, err)
	require.Len(t, emb.Faces, 2)
	assert.Len(t, emb.Faces[0], 5)
	assert.Len(t, emb.Faces[1], 5)
	eulerCheck(t, g, emb)
}

func TestEmbed_K4(t *testing.T) {
	g := buildComplete(4)
	emb, err := planar.Embed(g)
	require.NoError(t, err)
	require.Len(t, emb.Faces, 4)
	for _, f := range emb.Faces {
		assert.Len(t, f, 3, "K4 embeds with triangular faces only")
	}
	eulerCheck(t, g, emb)
}

func TestEmbed_Cube(t *testing.T) {
	g := core.New()
	for i := 0; i < 4; i++ {
		g.AddEdge(strconv.Itoa(i), strconv.Itoa((i+1)%4), 0)
		g.AddEdge(strconv.Itoa(i+4), strconv.Itoa((i+1)%4+4), 0)
		g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+4), 0)
	}
	emb, err := planar.Embed(g)
	require.NoError(t, err)
	require.Len(t, emb.Faces, 6)
	for _, f := range emb.Faces {
		assert.Len(t, f, 4, "the cube graph has quadrilateral faces")
	}
	eulerCheck(t, g, emb)
}

func TestEmbed_Bowtie_CutVertexFaces(t *testing.T) {
	g := core.New()
	g.AddEdge("m", "a", 0)
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "m", 0)
	g.AddEdge("m", "c", 0)
	g.AddEdge("c", "d", 0)
	g.AddEdge("d", "m", 0)
	emb, err := planar.Embed(g)
	require.NoError(t, err)
	assert.Len(t, emb.Faces, 3)
	eulerCheck(t, g, emb)
}

func TestEmbed_Disconnected(t *testing.T) {
	g := core.New()
	for _, tri := range [][]string{{"a", "b", "c"}, {"x", "y", "z"}} {
		g.AddEdge(tri[0], tri[1], 0)
		g.AddEdge(tri[1], tri[2], 0)
		g.AddEdge(tri[2], tri[0], 0)
	}
	emb, err := planar.Embed(g)
	require.NoError(t, err)
	assert.Len(t, emb.Faces, 4, "two faces per triangle component")
}

func TestEmbed_K5MinusEdge_IsMaximalPlanar(t *testing.T) {
	g := buildComplete(5)
	require.NoError(t, g.RemoveEdge(0, 1))
	emb, err := planar.Embed(g)
	require.NoError(t, err)
	require.Len(t, emb.Faces, 6)
	eulerCheck(t, g, emb)
}

func TestIsPlanar_K5(t *testing.T) {
	ok, err := planar.IsPlanar(buildComplete(5))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsPlanar_K33(t *testing.T) {
	g := core.New()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			g.AddEdge("u"+strconv.Itoa(i), "v"+strconv.Itoa(j), 0)
		}
	}
	ok, err := planar.IsPlanar(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsPlanar_Petersen(t *testing.T) {
	g := core.New()
	for i := 0; i < 5; i++ {
		g.AddEdge("o"+strconv.Itoa(i), "o"+strconv.Itoa((i+1)%5), 0)
		g.AddEdge("i"+strconv.Itoa(i), "i"+strconv.Itoa((i+2)%5), 0)
		g.AddEdge("o"+strconv.Itoa(i), "i"+strconv.Itoa(i), 0)
	}
	ok, err := planar.IsPlanar(g)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsPlanar_DirectedUsesUnderlying(t *testing.T) {
	g := core.New(core.WithDirected())
	g.AddEdge("a", "b", 0)
	g.AddEdge("b", "c", 0)
	g.AddEdge("c", "a", 0)
	ok, err := planar.IsPlanar(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTriangulate_SquareFace(t *testing.T) {
	emb, err := planar.Embed(buildCycle(4))
	require.NoError(t, err)
	require.Len(t, emb.Faces, 2)

	tri := planar.Triangulate(emb)
	require.Len(t, tri.Faces, 3, "one quad face splits into two triangles")
	assert.Len(t, tri.Faces[tri.Outer], 4, "outer face kept")
	for i, f := range tri.Faces {
		if i == tri.Outer {
			continue
		}
		assert.Len(t, f, 3)
	}
}

func TestTriangulate_KeepsTriangles(t *testing.T) {
	emb, err := planar.Embed(buildComplete(4))
	require.NoError(t, err)
	tri := planar.Triangulate(emb)
	assert.Equal(t, emb.Faces, tri.Faces)
}
