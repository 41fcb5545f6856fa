// Style dispatch and per-component assembly.
package layout

import (
	"math/rand"

	"github.com/katalvlaran/graphein/connectivity"
	"github.com/katalvlaran/graphein/core"
	"github.com/katalvlaran/graphein/planar"
)

// component is one connected piece of the input in local index space.
type component struct {
	verts []int       // local → global
	local map[int]int // global → local
	adj   [][]int     // local adjacency, undirected
}

// Compute lays out g in the given style. The result is indexed by vertex;
// directed graphs are positioned on their underlying undirected view.
func Compute(g *core.Graph, style Style, opts ...Option) (Layout, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	u := g
	if g.Directed() {
		u = g.Underlying()
	}
	n := u.VertexCount()
	out := make(Layout, n)
	if n == 0 {
		return out, nil
	}
	dim := 2
	if style == StyleSpring3D {
		dim = 3
	}

	comps, err := connectivity.Components(u)
	if err != nil {
		return nil, err
	}

	// planar style embeds once: components are embedded independently
	// inside Embed, and the triangulated faces are split up afterwards
	var triFaces [][]int
	if style == StylePlanar {
		emb, err := planar.Embed(u)
		if err != nil {
			return nil, err
		}
		triFaces = planar.Triangulate(emb).Faces
	}

	for _, members := range comps {
		c := newComponent(u, members)
		var pos []Point
		switch style {
		case StyleSpring, StyleSpring3D:
			pos = springLayout(c, dim, &cfg)
		case StyleTree:
			pos, err = treeLayout(c, &cfg)
		case StyleCircle:
			pos = circleLayout(u, c, &cfg)
		case StylePlanar:
			pos = planarComponent(c, triFaces, &cfg)
		default:
			return nil, ErrUnknownStyle
		}
		if err != nil {
			return nil, err
		}
		for li, gi := range c.verts {
			out[gi] = pos[li]
		}
	}
	if len(comps) > 1 {
		packComponents(out, comps, &cfg)
	}
	return out, nil
}

func newComponent(g *core.Graph, members []int) *component {
	c := &component{
		verts: members,
		local: make(map[int]int, len(members)),
		adj:   make([][]int, len(members)),
	}
	for li, gi := range members {
		c.local[gi] = li
	}
	for li, gi := range members {
		for _, nb := range g.Neighbors(gi) {
			if nb == gi {
				continue // loops have no geometric meaning
			}
			c.adj[li] = append(c.adj[li], c.local[nb])
		}
	}
	return c
}

// edgeCount counts undirected component edges.
func (c *component) edgeCount() int {
	deg := 0
	for _, nbs := range c.adj {
		deg += len(nbs)
	}
	return deg / 2
}
