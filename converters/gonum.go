package converters

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/arborist-go/impsep/core"
)

// ToGonum builds a gonum simple.UndirectedGraph isomorphic to g, along
// with the mapping from g's vertex identities to the gonum int64 node IDs
// it assigned them (g's own dense index, widened to int64). The returned
// graph satisfies gonum's graph.Undirected interface and can be handed to
// any gonum/graph/topo algorithm as an independent check on this module's
// own reach and flow packages.
func ToGonum[V comparable](g *core.Graph[V]) (*simple.UndirectedGraph, map[V]int64) {
	gg := simple.NewUndirectedGraph()
	ids := make(map[V]int64)

	for _, v := range g.Vertices() {
		idx, _ := g.Index(v)
		id := int64(idx)
		ids[v] = id
		gg.AddNode(simple.Node(id))
	}

	for _, v := range g.Vertices() {
		neigh, err := g.Neighbors(v)
		if err != nil {
			continue
		}
		for _, w := range neigh {
			gg.SetEdge(simple.Edge{F: simple.Node(ids[v]), T: simple.Node(ids[w])})
		}
	}

	return gg, ids
}
