// Barycentric straight-line drawing of a planar embedding.
package layout

import "math"

const barycentricIterations = 1000

// planarComponent draws one component of a triangulated embedding: the
// component's largest face becomes the outer regular polygon and every
// interior vertex relaxes to the barycenter of its neighbors until the
// largest move drops under the tolerance.
func planarComponent(c *component, triFaces [][]int, cfg *Options) []Point {
	n := len(c.verts)
	// faces of this component, translated to local indices
	var faces [][]int
	outer := -1
	for _, f := range triFaces {
		if _, ok := c.local[f[0]]; !ok {
			continue
		}
		lf := make([]int, len(f))
		for i, gv := range f {
			lf[i] = c.local[gv]
		}
		if outer == -1 || len(lf) > len(faces[outer]) {
			outer = len(faces)
		}
		faces = append(faces, lf)
	}
	pos := make([]Point, n)
	if outer == -1 {
		// no faces recorded for this component (cannot happen for a
		// successful embedding); degenerate single point
		for i := range pos {
			pos[i] = Point{0, 0}
		}
		return pos
	}

	// fix the outer face as a regular polygon of radius K
	fixed := make([]bool, n)
	rim := dedupKeepOrder(faces[outer])
	step := 2 * math.Pi / float64(len(rim))
	for k, li := range rim {
		a := float64(k) * step
		pos[li] = Point{cfg.K * math.Cos(a), cfg.K * math.Sin(a)}
		fixed[li] = true
	}
	for i := range pos {
		if pos[i] == nil {
			pos[i] = Point{0, 0}
		}
	}

	// relaxation adjacency: component edges plus triangulation diagonals
	adj := make([][]int, n)
	seen := make(map[[2]int]bool)
	link := func(a, b int) {
		if a == b {
			return
		}
		k := [2]int{a, b}
		if a > b {
			k = [2]int{b, a}
		}
		if seen[k] {
			return
		}
		seen[k] = true
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for v, nbs := range c.adj {
		for _, w := range nbs {
			link(v, w)
		}
	}
	for _, f := range faces {
		for i := range f {
			link(f[i], f[(i+1)%len(f)])
		}
	}

	for iter := 0; iter < barycentricIterations; iter++ {
		maxShift := 0.0
		for v := 0; v < n; v++ {
			if fixed[v] || len(adj[v]) == 0 {
				continue
			}
			var x, y float64
			for _, w := range adj[v] {
				x += pos[w][0]
				y += pos[w][1]
			}
			x /= float64(len(adj[v]))
			y /= float64(len(adj[v]))
			shift := math.Hypot(x-pos[v][0], y-pos[v][1])
			pos[v][0], pos[v][1] = x, y
			if shift > maxShift {
				maxShift = shift
			}
		}
		if maxShift < cfg.Tolerance*cfg.K {
			break
		}
	}
	return pos
}

func dedupKeepOrder(f []int) []int {
	seen := make(map[int]bool, len(f))
	out := make([]int, 0, len(f))
	for _, v := range f {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
