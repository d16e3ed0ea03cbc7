package reach

import (
	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/vset"
)

// Exists reports whether, in g restricted to vertices outside D, some
// vertex of X can reach some vertex of Y. X and Y may overlap; a shared
// vertex trivially satisfies reachability without any traversal.
// Complexity: O(|V|+|E|).
func Exists[V comparable](g *core.Graph[V], x, y, d vset.Set[V]) bool {
	if !vset.Disjoint(x, y) {
		return true
	}

	visited := make(map[V]bool)
	queue := make([]V, 0, x.Len())
	for _, v := range x.Members() {
		if d.Contains(v) {
			continue
		}
		if !visited[v] {
			visited[v] = true
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if y.Contains(u) {
			return true
		}

		neigh, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, v := range neigh {
			if d.Contains(v) || visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	return false
}
