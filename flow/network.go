package flow

import (
	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/vset"
)

// BuildSplitNetwork builds the unit-capacity vertex-split network for
// computing whether g has a vertex cut of size <= k separating X from Y,
// restricted to candidate vertices outside D (D is treated as already
// deleted: it contributes no nodes or arcs at all).
//
// Construction, following the standard reduction:
//   - every vertex v of g not in D becomes two nodes In(v), Out(v);
//   - the arc In(v)->Out(v) has capacity 1, unless v is in X or Y, in which
//     case it is uncuttable and gets capacity INF;
//   - every edge {a,b} of g with both endpoints outside D becomes two INF
//     arcs Out(a)->In(b) and Out(b)->In(a) (an edge can never itself be part
//     of a *vertex* cut);
//   - the super-source Src connects to Out(x) with capacity INF for every
//     x in X;
//   - In(y) connects to the super-sink Snk with capacity INF for every y in
//     Y.
//
// INF is fixed at max(k+1, |V(g)|+k+5): strictly greater than k (so an INF
// arc can never be the bottleneck of a flow of value <= k) and strictly
// greater than any achievable flow value bounded by the unit-capacity
// non-terminal vertices (so it never accidentally saturates within a
// feasible run). k must be positive and X, Y must be disjoint.
func BuildSplitNetwork[V comparable](g *core.Graph[V], x, y, d vset.Set[V], k int) (*Network, error) {
	if k <= 0 {
		return nil, ErrInvalidCapacity
	}
	if !vset.Disjoint(x, y) {
		return nil, ErrTerminalOverlap
	}

	inf := k + 1
	if alt := g.VertexCount() + k + 5; alt > inf {
		inf = alt
	}

	net := newNetwork()

	verts := g.Vertices()
	for _, v := range verts {
		if d.Contains(v) {
			continue
		}
		idx, _ := g.Index(v)
		c := 1
		if x.Contains(v) || y.Contains(v) {
			c = inf
		}
		net.addArc(In(idx), Out(idx), c)
	}

	for _, a := range verts {
		if d.Contains(a) {
			continue
		}
		ai, _ := g.Index(a)
		neigh, err := g.Neighbors(a)
		if err != nil {
			return nil, err
		}
		for _, b := range neigh {
			if d.Contains(b) {
				continue
			}
			bi, _ := g.Index(b)
			net.addArc(Out(ai), In(bi), inf)
		}
	}

	for _, v := range x.Members() {
		if d.Contains(v) {
			continue
		}
		idx, _ := g.Index(v)
		net.addArc(Src, Out(idx), inf)
	}
	for _, v := range y.Members() {
		if d.Contains(v) {
			continue
		}
		idx, _ := g.Index(v)
		net.addArc(In(idx), Snk, inf)
	}

	return net, nil
}
