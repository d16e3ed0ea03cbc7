package impsep

import (
	"sort"

	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/vset"
)

// pickBoundary returns any vertex v with v not in rMax, v not in x, y, or d,
// and at least one neighbor in rMax. It iterates rMax's members in
// ascending dense-index order, scanning each one's neighbors (also in
// ascending dense-index order, per core.Graph.Neighbors) and returning the
// first eligible vertex found. This "first-seen" policy is deterministic
// and chosen for reproducibility; any other tie-break would still preserve
// the enumerator's completeness, only its performance.
//
// ok is false when no such vertex exists: rMax already contains everything
// reachable and no further branching is possible.
func pickBoundary[V comparable](g *core.Graph[V], rMax, x, y, d vset.Set[V]) (v V, ok bool) {
	members := rMax.Members()
	sortByIndex(g, members)

	for _, u := range members {
		neigh, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, w := range neigh {
			if rMax.Contains(w) || x.Contains(w) || y.Contains(w) || d.Contains(w) {
				continue
			}

			return w, true
		}
	}

	var zero V

	return zero, false
}

// sortByIndex orders vs in place by ascending dense graph index, giving a
// deterministic iteration order independent of map iteration.
func sortByIndex[V comparable](g *core.Graph[V], vs []V) {
	idx := func(v V) int {
		i, _ := g.Index(v)

		return i
	}
	sort.Slice(vs, func(i, j int) bool { return idx(vs[i]) < idx(vs[j]) })
}
