// Package flow builds the vertex-split unit-capacity network used by the
// separator enumerator and computes its maximum flow plus the furthest
// minimum vertex cut.
//
// Split network: every original vertex v becomes a pair of nodes In(v) and
// Out(v) joined by a unit-capacity arc (or an INF-capacity arc if v is a
// protected terminal); every undirected edge {a,b} becomes two INF arcs
// Out(a)->In(b) and Out(b)->In(a); a super-source Src connects to Out(x) for
// every x in X, and In(y) connects to a super-sink Snk for every y in Y. A
// minimum Src-Snk cut in this network corresponds exactly to a minimum
// vertex cut in the original graph (Menger's theorem via the standard
// vertex-splitting reduction).
//
// Two maximum-flow algorithms are provided: Dinic (level graph + blocking
// flow, the default — fast on the many-short-augmenting-path unit-capacity
// networks this package builds) and EdmondsKarp (BFS augmenting paths, a
// simpler fallback, O(V*E^2) in the worst case). Both leave the caller
// holding the residual capacity map, from which FurthestMinCut recovers the
// unique furthest min-cut's source side: every vertex whose Out node cannot
// reach Snk in the residual graph, found by a backward BFS from Snk.
//
// Network is a throwaway structure: built fresh by BuildSplitNetwork for one
// FurthestMinCut call and discarded on return. It is not safe for concurrent
// use and carries no relationship to core.Graph beyond the dense indices
// used to label its In/Out node pairs.
package flow
