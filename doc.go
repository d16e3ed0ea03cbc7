// Package impsep enumerates important vertex separators between two
// terminals in an undirected graph, bounded by a size parameter k: the
// complete family of vertex subsets S with |S| <= k that disconnect s from
// t and that no smaller-or-equal-size separator strictly dominates (in the
// sense of the source-side reachable region after deletion). This is
// Marx's recursive branching primitive used in fixed-parameter multiway-cut
// and multicut algorithms.
//
// ImportantSeparators is the sole public entry point; everything else
// (core.Graph, vset.Set, reach.Exists, flow.FurthestMinCut) is supporting
// infrastructure consumed by the recursive enumerator in enumerate.go.
//
// The enumerator is single-threaded and synchronous: no goroutines, no
// blocking I/O. A caller that needs cancellation passes WithContext; the
// enumerator checks it cooperatively at each recursive call.
package impsep
