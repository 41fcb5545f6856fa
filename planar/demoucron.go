// Demoucron incremental planarity over the block-cut decomposition.
package planar

import (
	"errors"
	"sort"

	"github.com/katalvlaran/graphein/connectivity"
	"github.com/katalvlaran/graphein/core"
)

// Embed computes a planar embedding of g, or reports ErrNotPlanar.
// Directed graphs are embedded on their underlying undirected view.
// The outer face is the largest face found.
func Embed(g *core.Graph) (*Embedding, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	u := g
	if g.Directed() {
		u = g.Underlying()
	}
	comps, err := connectivity.Components(u)
	if err != nil {
		return nil, err
	}
	blocks, err := connectivity.Blocks(u)
	if err != nil {
		return nil, err
	}
	// group blocks by the component of their first endpoint
	compOf := make([]int, u.VertexCount())
	for ci, comp := range comps {
		for _, v := range comp {
			compOf[v] = ci
		}
	}
	blocksOf := make([][][]core.Edge, len(comps))
	for _, b := range blocks {
		ci := compOf[b[0].From]
		blocksOf[ci] = append(blocksOf[ci], b)
	}

	emb := &Embedding{}
	for ci, comp := range comps {
		faces, err := embedComponent(comp, blocksOf[ci])
		if err != nil {
			return nil, err
		}
		emb.Faces = append(emb.Faces, faces...)
	}
	for i, f := range emb.Faces {
		if len(f) > len(emb.Faces[emb.Outer]) {
			emb.Outer = i
		}
	}
	return emb, nil
}

// IsPlanar reports whether g admits a planar embedding. Non-planarity is
// a negative answer, not an error.
func IsPlanar(g *core.Graph) (bool, error) {
	_, err := Embed(g)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotPlanar):
		return false, nil
	default:
		return false, err
	}
}

// embedComponent embeds every block of one connected component and merges
// the block embeddings at their shared cut vertices.
func embedComponent(comp []int, blocks [][]core.Edge) ([][]int, error) {
	if len(blocks) == 0 {
		// single vertex, one face around it
		return [][]int{{comp[0]}}, nil
	}
	type pending struct {
		faces [][]int
		verts []int
	}
	queue := make([]pending, 0, len(blocks))
	for _, b := range blocks {
		faces, verts, err := embedBlock(b)
		if err != nil {
			return nil, err
		}
		queue = append(queue, pending{faces: faces, verts: verts})
	}

	// accumulate: start anywhere, then repeatedly splice in a block that
	// shares a cut vertex with what is already embedded
	acc := queue[0].faces
	inAcc := make(map[int]bool)
	for _, v := range queue[0].verts {
		inAcc[v] = true
	}
	queue = queue[1:]
	for len(queue) > 0 {
		picked := -1
		cut := -1
		for qi, p := range queue {
			for _, v := range p.verts {
				if inAcc[v] {
					picked, cut = qi, v
					break
				}
			}
			if picked != -1 {
				break
			}
		}
		p := queue[picked]
		queue = append(queue[:picked], queue[picked+1:]...)
		acc = spliceAt(acc, p.faces, cut)
		for _, v := range p.verts {
			inAcc[v] = true
		}
	}
	return acc, nil
}

// spliceAt merges the block face list into the accumulated one at the cut
// vertex v: one accumulated face containing v absorbs one block face
// containing v (the combined face walks into the block and back through
// v); the block's remaining faces carry over unchanged.
func spliceAt(acc, block [][]int, v int) [][]int {
	ai := faceWith(acc, v)
	bi := faceWith(block, v)
	rotated := rotateTo(block[bi], v)
	host := acc[ai]
	hi := indexOf(host, v)
	merged := make([]int, 0, len(host)+len(rotated))
	merged = append(merged, host[:hi+1]...)
	merged = append(merged, rotated[1:]...)
	merged = append(merged, v)
	merged = append(merged, host[hi+1:]...)
	acc[ai] = merged
	for i, f := range block {
		if i != bi {
			acc = append(acc, f)
		}
	}
	return acc
}

func faceWith(faces [][]int, v int) int {
	for i, f := range faces {
		if indexOf(f, v) != -1 {
			return i
		}
	}
	return -1
}

func indexOf(f []int, v int) int {
	for i, w := range f {
		if w == v {
			return i
		}
	}
	return -1
}

// rotateTo returns f rotated so that it starts at v.
func rotateTo(f []int, v int) []int {
	i := indexOf(f, v)
	out := make([]int, 0, len(f))
	out = append(out, f[i:]...)
	out = append(out, f[:i]...)
	return out
}

// embedder is the per-block Demoucron state.
type embedder struct {
	adj    map[int][]int // block adjacency
	vlist  []int         // block vertices, ascending, for deterministic scans
	edges  []core.Edge
	inV    map[int]bool    // embedded vertices
	inE    map[[2]int]bool // embedded edges, normalized From<To
	faces  [][]int
	remain int // block edges not yet embedded
}

// bridge is a fragment of the block relative to the embedded part: either
// a single chord between embedded vertices, or a connected set of
// unembedded vertices with its attachment edges.
type bridge struct {
	attach []int // embedded attachment vertices
	inner  []int // unembedded fragment vertices (empty for a chord)
	chord  [2]int
}

// embedBlock runs Demoucron on one biconnected block and returns its face
// list and sorted vertex set.
func embedBlock(edges []core.Edge) ([][]int, []int, error) {
	seen := make(map[int]bool)
	adj := make(map[int][]int)
	var vlist []int
	for _, e := range edges {
		for _, v := range []int{e.From, e.To} {
			if !seen[v] {
				seen[v] = true
				vlist = append(vlist, v)
			}
		}
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	sort.Ints(vlist)
	if len(edges) == 1 {
		// a bridge edge is its own block, one face walking it both ways
		return [][]int{{edges[0].From, edges[0].To}}, vlist, nil
	}
	// density reject: a simple planar graph has at most 3V-6 edges
	if len(vlist) >= 3 && len(edges) > 3*len(vlist)-6 {
		return nil, nil, ErrNotPlanar
	}

	em := &embedder{
		adj:    adj,
		vlist:  vlist,
		edges:  edges,
		inV:    make(map[int]bool),
		inE:    make(map[[2]int]bool),
		remain: len(edges),
	}
	cycle := em.findCycle()
	em.embedCycle(cycle)
	for em.remain > 0 {
		if err := em.step(); err != nil {
			return nil, nil, err
		}
	}
	return em.faces, vlist, nil
}

// findCycle walks the block until an edge closes a cycle; a multi-edge
// block is biconnected, so one always exists.
func (em *embedder) findCycle() []int {
	start := em.edges[0].From
	parent := map[int]int{start: -1}
	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range em.adj[v] {
			if w == parent[v] {
				continue
			}
			if _, seen := parent[w]; seen {
				return cycleThrough(parent, v, w)
			}
			parent[w] = v
			queue = append(queue, w)
		}
	}
	return nil // unreachable for a biconnected block
}

// cycleThrough joins the tree paths of v and w at their lowest common
// ancestor; the non-tree edge w-v closes the cycle.
func cycleThrough(parent map[int]int, v, w int) []int {
	depth := map[int]int{}
	var up []int
	for x := v; x != -1; x = parent[x] {
		depth[x] = len(up)
		up = append(up, x)
	}
	var side []int
	x := w
	for {
		if _, ok := depth[x]; ok {
			break
		}
		side = append(side, x)
		x = parent[x]
	}
	cyc := append([]int(nil), up[:depth[x]+1]...)
	for i := len(side) - 1; i >= 0; i-- {
		cyc = append(cyc, side[i])
	}
	return cyc
}

func (em *embedder) embedCycle(cyc []int) {
	rev := make([]int, len(cyc))
	for i, v := range cyc {
		rev[len(cyc)-1-i] = v
		em.inV[v] = true
		em.markEdge(v, cyc[(i+1)%len(cyc)])
	}
	em.faces = [][]int{cyc, rev}
}

func (em *embedder) markEdge(a, b int) {
	if a > b {
		a, b = b, a
	}
	if !em.inE[[2]int{a, b}] {
		em.inE[[2]int{a, b}] = true
		em.remain--
	}
}

func (em *embedder) hasEdge(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return em.inE[[2]int{a, b}]
}

// step embeds one path of the most constrained bridge, splitting a face.
func (em *embedder) step() error {
	bridges := em.bridges()
	best := -1
	var bestFaces []int
	for i := range bridges {
		adm := em.admissible(&bridges[i])
		if len(adm) == 0 {
			return ErrNotPlanar
		}
		if best == -1 || len(adm) < len(bestFaces) {
			best, bestFaces = i, adm
		}
	}
	b := &bridges[best]
	path := em.pathThrough(b)
	em.splitFace(bestFaces[0], path)
	return nil
}

// bridges groups the unembedded part of the block into chords and
// fragments with their attachments.
func (em *embedder) bridges() []bridge {
	var out []bridge
	// chords: both endpoints embedded, edge not yet placed
	for _, e := range em.edges {
		if em.inV[e.From] && em.inV[e.To] && !em.hasEdge(e.From, e.To) {
			out = append(out, bridge{attach: []int{e.From, e.To}, chord: [2]int{e.From, e.To}})
		}
	}
	// fragments: components of the unembedded vertices
	seen := make(map[int]bool)
	for _, v := range em.vlist {
		if em.inV[v] || seen[v] {
			continue
		}
		var inner []int
		attach := make(map[int]bool)
		stack := []int{v}
		seen[v] = true
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			inner = append(inner, x)
			for _, w := range em.adj[x] {
				if em.inV[w] {
					attach[w] = true
				} else if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
		br := bridge{inner: inner}
		for a := range attach {
			br.attach = append(br.attach, a)
		}
		sort.Ints(br.attach)
		out = append(out, br)
	}
	return out
}

// admissible returns the faces containing every attachment of b.
func (em *embedder) admissible(b *bridge) []int {
	var out []int
	for fi, f := range em.faces {
		ok := true
		for _, a := range b.attach {
			if indexOf(f, a) == -1 {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, fi)
		}
	}
	return out
}

// pathThrough picks one attachment-to-attachment path of the bridge whose
// interior lies inside the fragment.
func (em *embedder) pathThrough(b *bridge) []int {
	if len(b.inner) == 0 {
		return []int{b.chord[0], b.chord[1]}
	}
	root := b.attach[0]
	inFrag := make(map[int]bool, len(b.inner))
	for _, v := range b.inner {
		inFrag[v] = true
	}
	parent := map[int]int{}
	var queue []int
	for _, w := range em.adj[root] {
		if inFrag[w] {
			if _, ok := parent[w]; !ok {
				parent[w] = root
				queue = append(queue, w)
			}
		}
	}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, w := range em.adj[x] {
			if em.inV[w] && w != root {
				// reached another attachment: unwind
				path := []int{w, x}
				for p := parent[x]; ; p = parent[p] {
					path = append(path, p)
					if p == root {
						break
					}
				}
				// reverse into root..w order
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path
			}
			if inFrag[w] {
				if _, ok := parent[w]; !ok {
					parent[w] = x
					queue = append(queue, w)
				}
			}
		}
	}
	return nil // unreachable: a block bridge has at least two attachments
}

// splitFace lays path across face fi, replacing it with the two faces the
// path cuts it into, and marks the path as embedded.
func (em *embedder) splitFace(fi int, path []int) {
	f := em.faces[fi]
	a, b := path[0], path[len(path)-1]
	i, j := indexOf(f, a), indexOf(f, b)
	inner := path[1 : len(path)-1]

	arc := func(from, to int) []int {
		var out []int
		for k := from; ; k = (k + 1) % len(f) {
			out = append(out, f[k])
			if k == to {
				return out
			}
		}
	}
	face1 := arc(i, j) // a .. b along the face
	for k := len(inner) - 1; k >= 0; k-- {
		face1 = append(face1, inner[k]) // back through the path
	}
	face2 := arc(j, i) // b .. a along the other side
	face2 = append(face2, inner...)

	em.faces[fi] = face1
	em.faces = append(em.faces, face2)

	for k := 0; k+1 < len(path); k++ {
		em.markEdge(path[k], path[k+1])
	}
	for _, v := range inner {
		em.inV[v] = true
	}
}
