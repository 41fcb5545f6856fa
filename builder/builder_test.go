package builder_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphein/builder"
	"github.com/katalvlaran/graphein/core"
	"github.com/katalvlaran/graphein/traverse"
)

func TestCycle(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.IsRegular(2))

	_, err = builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestPath(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 1}, g.DegreeSequence())

	g, err = builder.Path(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

func TestComplete(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.IsRegular(3))
}

func TestCompleteBipartite(t *testing.T) {
	g, err := builder.CompleteBipartite(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.Equal(t, []int{3, 3, 2, 2, 2}, g.DegreeSequence())
}

func TestStarAndWheel(t *testing.T) {
	g, err := builder.Star(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 1, 1, 1, 1}, g.DegreeSequence())

	g, err = builder.Wheel(4)
	require.NoError(t, err)
	assert.Equal(t, 8, g.EdgeCount())
	assert.Equal(t, 4, g.Degree(4), "hub touches every rim vertex")
	for i := 0; i < 4; i++ {
		assert.Equal(t, 3, g.Degree(i))
	}
}

func TestHypercube(t *testing.T) {
	g, err := builder.Hypercube(3)
	require.NoError(t, err)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 12, g.EdgeCount())
	assert.True(t, g.IsRegular(3))
	girth, ok := traverse.Girth(g)
	require.True(t, ok)
	assert.Equal(t, 4, girth)
}

func TestGrid(t *testing.T) {
	g, err := builder.Grid(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(2, 3), "row ends do not wrap")
}

func TestPetersen(t *testing.T) {
	g, err := builder.Petersen(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 15, g.EdgeCount())
	assert.True(t, g.IsRegular(3))
	girth, ok := traverse.Girth(g)
	require.True(t, ok)
	assert.Equal(t, 5, girth)

	_, err = builder.Petersen(5, 3)
	assert.ErrorIs(t, err, builder.ErrBadParameter)
}

func TestLCF_Heawood(t *testing.T) {
	g, err := builder.LCF([]int{5, -5}, 7)
	require.NoError(t, err)
	assert.Equal(t, 14, g.VertexCount())
	assert.Equal(t, 21, g.EdgeCount())
	assert.True(t, g.IsRegular(3))
	girth, ok := traverse.Girth(g)
	require.True(t, ok)
	assert.Equal(t, 6, girth)
}

func TestLCF_Rejects(t *testing.T) {
	_, err := builder.LCF(nil, 3)
	assert.ErrorIs(t, err, builder.ErrBadParameter)

	_, err = builder.LCF([]int{4}, 4) // shift 4 on 4 vertices is a loop
	assert.ErrorIs(t, err, builder.ErrBadParameter)
}

func TestFromName_Catalog(t *testing.T) {
	sizes := map[string][2]int{
		"petersen":      {10, 15},
		"durer":         {12, 18},
		"heawood":       {14, 21},
		"mobius-kantor": {16, 24},
		"pappus":        {18, 27},
		"desargues":     {20, 30},
		"dodecahedron":  {20, 30},
		"mcgee":         {24, 36},
		"nauru":         {24, 36},
		"tetrahedron":   {4, 6},
		"octahedron":    {6, 12},
		"cube":          {8, 12},
		"icosahedron":   {12, 30},
	}
	for name, want := range sizes {
		g, err := builder.FromName(name)
		require.NoError(t, err, name)
		assert.Equal(t, want[0], g.VertexCount(), "%s vertices", name)
		assert.Equal(t, want[1], g.EdgeCount(), "%s edges", name)
		assert.Equal(t, name, g.Name())
	}
	assert.ElementsMatch(t, builder.Names(), keys(sizes))
}

func keys(m map[string][2]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestFromName_CaseInsensitive(t *testing.T) {
	g, err := builder.FromName("  Petersen ")
	require.NoError(t, err)
	assert.Equal(t, 10, g.VertexCount())
}

func TestFromName_Unknown(t *testing.T) {
	_, err := builder.FromName("zarankiewicz")
	assert.ErrorIs(t, err, builder.ErrUnknownName)
}

func TestFromName_RegularPolyhedra(t *testing.T) {
	for name, deg := range map[string]int{"tetrahedron": 3, "octahedron": 4, "cube": 3, "icosahedron": 5} {
		g, err := builder.FromName(name)
		require.NoError(t, err)
		assert.True(t, g.IsRegular(deg), name)
	}
}

func TestIsGraphic(t *testing.T) {
	assert.True(t, builder.IsGraphic(nil))
	assert.True(t, builder.IsGraphic([]int{0, 0}))
	assert.True(t, builder.IsGraphic([]int{3, 3, 2, 2, 2, 1, 1}))
	assert.False(t, builder.IsGraphic([]int{1}), "odd degree sum")
	assert.False(t, builder.IsGraphic([]int{3, 1}), "degree exceeds n-1")
	assert.False(t, builder.IsGraphic([]int{-1, 1}))
	assert.False(t, builder.IsGraphic([]int{4, 4, 4, 1, 1, 1, 1}), "Erdos-Gallai prefix violation")
}

func TestFromDegreeSequence_RealizesSortedInput(t *testing.T) {
	seq := []int{3, 3, 2, 2, 2, 1, 1}
	g, err := builder.FromDegreeSequence(seq)
	require.NoError(t, err)
	got := g.DegreeSequence()
	sort.Sort(sort.Reverse(sort.IntSlice(got)))
	assert.Equal(t, seq, got)
	assertSimple(t, g)
}

func TestFromDegreeSequence_NotGraphic(t *testing.T) {
	_, err := builder.FromDegreeSequence([]int{1, 1, 1})
	assert.ErrorIs(t, err, builder.ErrNotGraphic)
}

// assertSimple: no loops, and Edges lists each pair once.
func assertSimple(t *testing.T, g *core.Graph) {
	t.Helper()
	seen := make(map[[2]int]bool)
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.From, e.To, "loop at %d", e.From)
		k := [2]int{e.From, e.To}
		assert.False(t, seen[k], "duplicate edge %v", e)
		seen[k] = true
	}
}
