package flow

import (
	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/vset"
)

// FurthestMinCut computes the maximum flow of the split network for
// (g, X, Y, D, k) and, if that max flow is <= k, returns it together with
// R_max, the furthest minimum vertex cut's source-side reachable region:
// the unique largest (under set inclusion) X-side vertex set left standing
// after removing some minimum X-Y vertex cut (the submodularity of min
// cuts guarantees this region is unique regardless of which min cut is
// found by the underlying maxflow).
//
// ok is false when the max flow exceeds k: no cut of size <= k exists, and
// the returned set is meaningless.
//
// Construction: after the flow converges, the nodes that can still reach Snk
// over arcs with positive residual capacity form the sink side of the
// furthest minimum cut. rMax is every original vertex v (not in D, not in Y)
// whose Out(v) cannot reach Snk. The separator implied by this cut is the
// set of v whose saturated In(v)->Out(v) arc crosses from the source side to
// the sink side, but the enumerator never needs that set directly, only rMax.
// Vertices in components that touch neither X nor Y also count as source
// side; none of their neighbors lies outside rMax.
func FurthestMinCut[V comparable](g *core.Graph[V], x, y, d vset.Set[V], k int) (ok bool, rMax vset.Set[V], err error) {
	net, err := BuildSplitNetwork(g, x, y, d, k)
	if err != nil {
		return false, vset.Empty[V](), err
	}

	value, residual := Dinic(net)
	if value > k {
		return false, vset.Empty[V](), nil
	}

	toSink := residualReach(residual, net.snk)

	members := make([]V, 0)
	for _, v := range g.Vertices() {
		if d.Contains(v) || y.Contains(v) {
			continue
		}
		idx, _ := g.Index(v)
		if !toSink[Out(idx)] {
			members = append(members, v)
		}
	}

	return true, vset.Of(members...), nil
}

// residualReach returns the set of nodes from which dst can be reached
// following only arcs with strictly positive residual capacity. Every arc's
// reverse entry exists in residual (see Network.addArc), so residual[v]
// lists every u with an arc u->v.
func residualReach(residual map[Node]map[Node]int, dst Node) map[Node]bool {
	seen := map[Node]bool{dst: true}
	queue := []Node{dst}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for u := range residual[v] {
			if seen[u] || residual[u][v] <= 0 {
				continue
			}
			seen[u] = true
			queue = append(queue, u)
		}
	}

	return seen
}
