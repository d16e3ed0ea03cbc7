// Package converters adapts core.Graph[V] to gonum's graph.Undirected
// interface, giving property tests an independently-implemented
// connectivity oracle (via gonum/graph/topo) to cross-check the
// enumerator's separators against.
package converters
