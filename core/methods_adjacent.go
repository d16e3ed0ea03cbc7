// File: methods_adjacent.go
// Role: Neighborhood lookups.
// Determinism:
//   - Neighbors(v) and NeighborIndices(v) are sorted by dense index ascending,
//     so iteration order is reproducible across calls and across processes for
//     the same construction order.

package core

import "sort"

// Neighbors returns v's neighbors, sorted by dense index ascending.
// Returns ErrVertexNotFound if v is not a member of the graph.
// Complexity: O(d log d).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	if !g.HasVertex(v) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	nbrs := g.adjacency[v]
	out := make([]V, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	g.muEdgeAdj.RUnlock()

	g.muVert.RLock()
	sort.Slice(out, func(i, j int) bool { return g.index[out[i]] < g.index[out[j]] })
	g.muVert.RUnlock()

	return out, nil
}

// NeighborIndices returns the dense indices of v's neighbors, sorted ascending.
// Complexity: O(d log d).
func (g *Graph[V]) NeighborIndices(v V) ([]int, error) {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]int, len(nbrs))
	for i, u := range nbrs {
		out[i] = g.index[u]
	}

	return out, nil
}

// Degree returns the number of edges incident to v.
// Complexity: O(1).
func (g *Graph[V]) Degree(v V) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[v]), nil
}
