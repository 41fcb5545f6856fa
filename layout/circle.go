// Circle placement along a leading cycle.
package layout

import (
	"math"

	"github.com/katalvlaran/graphein/core"
	"github.com/katalvlaran/graphein/traverse"
)

// circleLayout puts the component's vertices on a circle of radius K.
// The angular order starts with the leading cycle: the one supplied via
// WithCycle when it lies in this component, otherwise a discovered cycle,
// otherwise plain construction order.
func circleLayout(g *core.Graph, c *component, cfg *Options) []Point {
	order := leadingOrder(g, c, cfg)
	n := len(order)
	pos := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for k, li := range order {
		a := float64(k) * step
		pos[li] = Point{cfg.K * math.Cos(a), cfg.K * math.Sin(a)}
	}
	return pos
}

// leadingOrder returns local indices: cycle members first, the rest in
// ascending order.
func leadingOrder(g *core.Graph, c *component, cfg *Options) []int {
	cycle := cfg.Cycle
	if !cycleInComponent(cycle, c) {
		if found, ok := traverse.FindCycle(g); ok && cycleInComponent(found, c) {
			cycle = found
		} else {
			cycle = nil
		}
	}
	used := make([]bool, len(c.verts))
	order := make([]int, 0, len(c.verts))
	for _, gv := range cycle {
		li := c.local[gv]
		if !used[li] {
			used[li] = true
			order = append(order, li)
		}
	}
	for li := range c.verts {
		if !used[li] {
			order = append(order, li)
		}
	}
	return order
}

func cycleInComponent(cycle []int, c *component) bool {
	if len(cycle) == 0 {
		return false
	}
	for _, gv := range cycle {
		if _, ok := c.local[gv]; !ok {
			return false
		}
	}
	return true
}
