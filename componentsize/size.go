package componentsize

import (
	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/vset"
)

// Size returns the number of vertices reachable from s in g after removing
// separator (s itself excluded from the count's traversal roots only in
// the sense that it is where the BFS starts, but it is always counted).
// If s is itself a member of separator, Size returns 0: there is no
// component to measure.
// Complexity: O(|V|+|E|).
func Size[V comparable](g *core.Graph[V], s V, separator vset.Set[V]) int {
	if separator.Contains(s) {
		return 0
	}

	visited := map[V]bool{s: true}
	queue := []V{s}
	count := 0

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		count++

		neigh, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, v := range neigh {
			if separator.Contains(v) || visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}

	return count
}
