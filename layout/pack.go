// Greedy rectangle packing of component layouts.
package layout

import (
	"math"
	"sort"
)

// packComponents translates each component's coordinates so the component
// bounding rectangles sit in non-overlapping rows. Rectangles are placed
// tallest first into rows bounded by a width derived from the total area;
// Separation is the margin between neighbors. Only the first two
// coordinates move, a third (spring 3D) keeps its value.
func packComponents(out Layout, comps [][]int, cfg *Options) {
	type rect struct {
		comp             int
		minX, minY, w, h float64
	}
	rects := make([]rect, len(comps))
	totalArea := 0.0
	maxW := 0.0
	for ci, members := range comps {
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, v := range members {
			p := out[v]
			minX = math.Min(minX, p[0])
			maxX = math.Max(maxX, p[0])
			minY = math.Min(minY, p[1])
			maxY = math.Max(maxY, p[1])
		}
		r := rect{comp: ci, minX: minX, minY: minY, w: maxX - minX + cfg.Separation, h: maxY - minY + cfg.Separation}
		rects[ci] = r
		totalArea += r.w * r.h
		maxW = math.Max(maxW, r.w)
	}
	sort.SliceStable(rects, func(i, j int) bool { return rects[i].h > rects[j].h })

	limit := math.Max(maxW, math.Sqrt(totalArea)*1.2)
	x, y, rowH := 0.0, 0.0, 0.0
	for _, r := range rects {
		if x > 0 && x+r.w > limit {
			x = 0
			y -= rowH
			rowH = 0
		}
		dx, dy := x-r.minX, y-r.h-r.minY
		for _, v := range comps[r.comp] {
			out[v][0] += dx
			out[v][1] += dy
		}
		x += r.w
		rowH = math.Max(rowH, r.h)
	}
}
