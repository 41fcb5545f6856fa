// The named-graph catalog.
package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphein/core"
)

// catalog maps a canonical name to its construction. LCF codes follow
// the standard notation [shifts]^reps.
var catalog = map[string]func() (*core.Graph, error){
	"petersen":      func() (*core.Graph, error) { return Petersen(5, 2) },
	"durer":         func() (*core.Graph, error) { return Petersen(6, 2) },
	"heawood":       func() (*core.Graph, error) { return LCF([]int{5, -5}, 7) },
	"mobius-kantor": func() (*core.Graph, error) { return LCF([]int{5, -5}, 8) },
	"pappus":        func() (*core.Graph, error) { return LCF([]int{5, 7, -7, 7, -7, -5}, 3) },
	"desargues":     func() (*core.Graph, error) { return LCF([]int{5, -5, 9, -9}, 5) },
	"dodecahedron":  func() (*core.Graph, error) { return LCF([]int{10, 7, 4, -4, -7, 10, -4, 7, -7, 4}, 2) },
	"mcgee":         func() (*core.Graph, error) { return LCF([]int{12, 7, -7}, 8) },
	"nauru":         func() (*core.Graph, error) { return LCF([]int{5, -9, 7, -7, 9, -5}, 4) },
	"tetrahedron":   func() (*core.Graph, error) { return Complete(4) },
	"cube":          func() (*core.Graph, error) { return Hypercube(3) },
	"octahedron":    octahedron,
	"icosahedron":   icosahedron,
}

// FromName builds a catalog graph by its (case-insensitive) name and
// names the result accordingly.
func FromName(name string) (*core.Graph, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	build, ok := catalog[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	g, err := build()
	if err != nil {
		return nil, err
	}
	g.SetName(key)
	return g, nil
}

// Names lists the catalog in no particular order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	return out
}

// octahedron is K_{2,2,2}: all pairs except the three antipodal ones.
func octahedron() (*core.Graph, error) {
	g := newN(6)
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if j == i+3 {
				continue
			}
			g.AddEdgeIndex(i, j, 0)
		}
	}
	return g, nil
}

// icosahedron: apex 0, upper ring 1..5, lower ring 6..10, apex 11.
func icosahedron() (*core.Graph, error) {
	g := newN(12)
	for i := 0; i < 5; i++ {
		up := 1 + i
		low := 6 + i
		g.AddEdgeIndex(0, up, 0)
		g.AddEdgeIndex(11, low, 0)
		g.AddEdgeIndex(up, 1+(i+1)%5, 0)
		g.AddEdgeIndex(low, 6+(i+1)%5, 0)
		g.AddEdgeIndex(up, low, 0)
		g.AddEdgeIndex(up, 6+(i+1)%5, 0)
	}
	return g, nil
}
