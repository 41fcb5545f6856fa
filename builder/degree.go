// Degree-sequence tests and realization.
package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphein/core"
)

// IsGraphic reports whether the sequence is realizable as a simple
// undirected graph, by the Erdős–Gallai criterion: the sum must be even
// and for every prefix length k of the descending sequence,
//
//	Σ_{i<k} d_i ≤ k(k-1) + Σ_{i≥k} min(d_i, k).
//
// Complexity: O(n²) after the O(n log n) sort.
func IsGraphic(seq []int) bool {
	n := len(seq)
	if n == 0 {
		return true
	}
	d := append([]int(nil), seq...)
	sort.Sort(sort.Reverse(sort.IntSlice(d)))
	if d[0] >= n || d[n-1] < 0 {
		return false
	}
	sum := 0
	for _, x := range d {
		sum += x
	}
	if sum%2 != 0 {
		return false
	}
	left := 0
	for k := 1; k <= n; k++ {
		left += d[k-1]
		right := k * (k - 1)
		for i := k; i < n; i++ {
			if d[i] < k {
				right += d[i]
			} else {
				right += k
			}
		}
		if left > right {
			return false
		}
	}
	return true
}

// FromDegreeSequence realizes a graphic sequence by Havel–Hakimi: the
// vertex of highest remaining degree is connected to the next-highest
// ones, repeatedly. The result's sorted degree sequence equals the
// sorted input; ErrNotGraphic when no simple graph has these degrees.
func FromDegreeSequence(seq []int) (*core.Graph, error) {
	if !IsGraphic(seq) {
		return nil, fmt.Errorf("%w: %v", ErrNotGraphic, seq)
	}
	n := len(seq)
	g := newN(n)

	type slot struct{ v, deg int }
	slots := make([]slot, n)
	for i, d := range seq {
		slots[i] = slot{v: i, deg: d}
	}
	for {
		// stable by vertex index underneath the degree order, so the
		// construction is deterministic
		sort.SliceStable(slots, func(i, j int) bool { return slots[i].deg > slots[j].deg })
		if slots[0].deg == 0 {
			return g, nil
		}
		head := slots[0]
		slots[0].deg = 0
		for k := 1; k <= head.deg; k++ {
			g.AddEdgeIndex(head.v, slots[k].v, 0)
			slots[k].deg--
		}
	}
}
