// Package vset provides a generic, immutable, hashable vertex-set type used
// throughout this module for X (source side), Y (sink side), D (deleted),
// S (a separator), and R (a reachable region).
//
// Set[V] is a plain value around a membership map; every mutator (With,
// Union) returns a new Set and leaves the receiver untouched, which
// is what lets the recursive enumerator hand a set to two branches without
// either branch observing the other's changes.
//
// Key is a canonical, order-independent identity for a Set, built from a
// graph's dense vertex indices (see core.Graph.Index). Two sets with equal
// members always produce equal Keys regardless of insertion order, which is
// what lets a Key be used directly as a map key for memoization.
package vset
