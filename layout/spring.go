// Fruchterman–Reingold placement with multilevel coarsening.
package layout

import "math"

const (
	// coarsenThreshold is the component size above which the multilevel
	// path is taken.
	coarsenThreshold = 100

	// springIterations bounds one relaxation run.
	springIterations = 300

	// refineIterations bounds the post-prolongation local relaxation.
	refineIterations = 60
)

// springLayout places one component by force-directed relaxation,
// recursing through MIS coarsening when the component is large.
func springLayout(c *component, dim int, cfg *Options) []Point {
	pos := springPositions(c.adj, dim, cfg)
	return pos
}

func springPositions(adj [][]int, dim int, cfg *Options) []Point {
	n := len(adj)
	if n > coarsenThreshold {
		return multilevel(adj, dim, cfg)
	}
	pos := randomPositions(n, dim, cfg)
	relax(adj, pos, dim, cfg, springIterations)
	return pos
}

// multilevel coarsens by a maximal independent set, lays out the coarse
// graph recursively and prolongs the positions back through the sparse
// weight matrix before a local relaxation.
func multilevel(adj [][]int, dim int, cfg *Options) []Point {
	coarseAdj, prolong, coarseOf := coarsenMIS(adj)
	if len(coarseAdj) == len(adj) {
		// coarsening made no progress, fall back to direct relaxation
		pos := randomPositions(len(adj), dim, cfg)
		relax(adj, pos, dim, cfg, springIterations)
		return pos
	}
	coarse := springPositions(coarseAdj, dim, cfg)

	n := len(adj)
	pos := make([]Point, n)
	jitter := 0.1 * cfg.K
	for v := 0; v < n; v++ {
		p := make(Point, dim)
		if ci, inMIS := coarseOf[v]; inMIS {
			copy(p, coarse[ci])
		} else {
			row := prolong.row(v)
			for ci, w := range row {
				for d := 0; d < dim; d++ {
					p[d] += w * coarse[ci][d]
				}
			}
			for d := 0; d < dim; d++ {
				p[d] += jitter * (cfg.Rand.Float64() - 0.5)
			}
		}
		pos[v] = p
	}
	relax(adj, pos, dim, cfg, refineIterations)
	return pos
}

// coarsenMIS picks a maximal independent set in index order; MIS members
// become coarse vertices, joined when at most two hops apart. The sparse
// prolongation matrix distributes every dropped vertex over its MIS
// neighbors with equal weight.
func coarsenMIS(adj [][]int) ([][]int, sparse, map[int]int) {
	n := len(adj)
	inMIS := make([]bool, n)
	blocked := make([]bool, n)
	coarseOf := make(map[int]int)
	var order []int
	for v := 0; v < n; v++ {
		if blocked[v] {
			continue
		}
		inMIS[v] = true
		coarseOf[v] = len(order)
		order = append(order, v)
		for _, w := range adj[v] {
			blocked[w] = true
		}
	}

	prolong := make(sparse)
	for v := 0; v < n; v++ {
		if inMIS[v] {
			prolong.set(v, coarseOf[v], 1)
			continue
		}
		var owners []int
		for _, w := range adj[v] {
			if inMIS[w] {
				owners = append(owners, coarseOf[w])
			}
		}
		w := 1.0 / float64(len(owners))
		for _, ci := range owners {
			prolong.set(v, ci, w)
		}
	}

	coarseAdj := make([][]int, len(order))
	seen := make(map[[2]int]bool)
	link := func(a, b int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		if seen[[2]int{a, b}] {
			return
		}
		seen[[2]int{a, b}] = true
		coarseAdj[a] = append(coarseAdj[a], b)
		coarseAdj[b] = append(coarseAdj[b], a)
	}
	for v := 0; v < n; v++ {
		for _, w := range adj[v] {
			if w < v {
				continue
			}
			for _, a := range ownersOf(v, inMIS, coarseOf, adj) {
				for _, b := range ownersOf(w, inMIS, coarseOf, adj) {
					link(a, b)
				}
			}
		}
	}
	return coarseAdj, prolong, coarseOf
}

func ownersOf(v int, inMIS []bool, coarseOf map[int]int, adj [][]int) []int {
	if inMIS[v] {
		return []int{coarseOf[v]}
	}
	var out []int
	for _, w := range adj[v] {
		if inMIS[w] {
			out = append(out, coarseOf[w])
		}
	}
	return out
}

func randomPositions(n, dim int, cfg *Options) []Point {
	scale := cfg.K * math.Sqrt(float64(n))
	pos := make([]Point, n)
	for i := range pos {
		p := make(Point, dim)
		for d := range p {
			p[d] = scale * cfg.Rand.Float64()
		}
		pos[i] = p
	}
	return pos
}

// relax runs the force loop: bounded pairwise repulsion K²/d, attraction
// d²/K along edges, displacement capped by the cooling temperature.
func relax(adj [][]int, pos []Point, dim int, cfg *Options, iters int) {
	n := len(pos)
	if n < 2 {
		return
	}
	K := cfg.K
	bound := 2 * K // repulsion cut-off radius
	temp := K * math.Sqrt(float64(n))
	eps := 1e-9

	disp := make([]Point, n)
	for i := range disp {
		disp[i] = make(Point, dim)
	}
	delta := make(Point, dim)

	for iter := 0; iter < iters; iter++ {
		for i := range disp {
			for d := 0; d < dim; d++ {
				disp[i][d] = 0
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dist := distance(pos[i], pos[j], delta, eps)
				if dist > bound {
					continue
				}
				f := K * K / dist / dist
				for d := 0; d < dim; d++ {
					disp[i][d] += delta[d] * f
					disp[j][d] -= delta[d] * f
				}
			}
		}
		for i := 0; i < n; i++ {
			for _, j := range adj[i] {
				if j <= i {
					continue
				}
				dist := distance(pos[i], pos[j], delta, eps)
				f := dist / K
				for d := 0; d < dim; d++ {
					disp[i][d] -= delta[d] * f
					disp[j][d] += delta[d] * f
				}
			}
		}
		maxShift := 0.0
		for i := 0; i < n; i++ {
			length := norm(disp[i])
			if length < eps {
				continue
			}
			step := length
			if step > temp {
				step = temp
			}
			for d := 0; d < dim; d++ {
				pos[i][d] += disp[i][d] / length * step
			}
			if step > maxShift {
				maxShift = step
			}
		}
		if cfg.OnIteration != nil {
			cfg.OnIteration(iter, maxShift)
		}
		if maxShift < cfg.Tolerance*K {
			return
		}
		temp *= 0.95
	}
}

// distance fills delta = a-b and returns |delta| floored at eps.
func distance(a, b, delta Point, eps float64) float64 {
	sum := 0.0
	for d := range delta {
		delta[d] = a[d] - b[d]
		sum += delta[d] * delta[d]
	}
	dist := math.Sqrt(sum)
	if dist < eps {
		return eps
	}
	return dist
}

func norm(p Point) float64 {
	sum := 0.0
	for _, x := range p {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// sparse is a map-of-maps matrix; only non-zero rows and cells exist.
type sparse map[int]map[int]float64

func (m sparse) set(i, j int, v float64) {
	row, ok := m[i]
	if !ok {
		row = make(map[int]float64)
		m[i] = row
	}
	row[j] = v
}

func (m sparse) row(i int) map[int]float64 { return m[i] }
