package planar

import "errors"

// Sentinel errors for planarity operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("planar: graph is nil")

	// ErrNotPlanar is returned by Embed when the graph admits no planar
	// embedding.
	ErrNotPlanar = errors.New("planar: graph is not planar")
)

// Embedding is a combinatorial embedding: the face list of a planar
// drawing. Each face is a cyclic vertex-index walk (the closing edge back
// to the first vertex is implicit). A face may visit a cut vertex more
// than once; a tree component is one face walking every edge twice.
type Embedding struct {
	// Faces holds every face of every component, outer faces included.
	Faces [][]int

	// Outer indexes the face chosen as the outer one (the largest).
	Outer int
}

// Triangulate returns a copy of e in which every interior face with four
// or more vertices is fanned into triangles from its first vertex. The
// outer face is kept as is, and so are faces that revisit a vertex (block
// boundaries at cut vertices), which have no meaningful fan.
func Triangulate(e *Embedding) *Embedding {
	out := &Embedding{Faces: make([][]int, 0, len(e.Faces)), Outer: e.Outer}
	var fans [][]int
	for i, f := range e.Faces {
		if i == e.Outer || len(f) <= 3 || hasRepeats(f) {
			out.Faces = append(out.Faces, append([]int(nil), f...))
			continue
		}
		out.Faces = append(out.Faces, []int{f[0], f[1], f[2]})
		for k := 2; k < len(f)-1; k++ {
			fans = append(fans, []int{f[0], f[k], f[k+1]})
		}
	}
	out.Faces = append(out.Faces, fans...)
	return out
}

func hasRepeats(f []int) bool {
	seen := make(map[int]bool, len(f))
	for _, v := range f {
		if seen[v] {
			return true
		}
		seen[v] = true
	}
	return false
}
