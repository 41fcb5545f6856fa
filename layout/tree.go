// Layered tree drawing: bottom-up extents, top-down placement.
package layout

// treeLayout draws one tree component. The root comes from Options.Roots
// when one of them lies in this component, otherwise the first vertex.
// A pass over the subtrees computes each one's preliminary center and
// horizontal extent; the placement pass accumulates the offsets downward.
func treeLayout(c *component, cfg *Options) ([]Point, error) {
	n := len(c.verts)
	if c.edgeCount() != n-1 {
		return nil, ErrNotTree
	}
	root := 0
	for _, r := range cfg.Roots {
		if li, ok := c.local[r]; ok {
			root = li
			break
		}
	}

	// orient the tree away from the root
	parent := make([]int, n)
	order := make([]int, 0, n)
	children := make([][]int, n)
	for i := range parent {
		parent[i] = -2
	}
	parent[root] = -1
	queue := []int{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, w := range c.adj[v] {
			if parent[w] == -2 {
				parent[w] = v
				children[v] = append(children[v], w)
				queue = append(queue, w)
			}
		}
	}

	// bottom-up: extent of each subtree (leaves take one slot of width K)
	extent := make([]float64, n)
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if len(children[v]) == 0 {
			extent[v] = cfg.K
			continue
		}
		for _, ch := range children[v] {
			extent[v] += extent[ch]
		}
	}

	// top-down: children packed left to right, parent centered over them
	pos := make([]Point, n)
	depth := make([]int, n)
	left := make([]float64, n)
	for _, v := range order {
		if len(children[v]) == 0 {
			pos[v] = Point{left[v] + extent[v]/2, -float64(depth[v]) * cfg.K}
			continue
		}
		cursor := left[v]
		for _, ch := range children[v] {
			left[ch] = cursor
			depth[ch] = depth[v] + 1
			cursor += extent[ch]
		}
		pos[v] = Point{left[v] + extent[v]/2, -float64(depth[v]) * cfg.K}
	}
	return pos, nil
}
