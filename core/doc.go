// Package core defines the generic Graph type used throughout this module:
// a finite, undirected, simple graph over any comparable vertex type.
//
// Graph never assumes its vertices are strings or integers — callers may use
// tuples, structs, or plain integers as vertex identities. Internally, each
// vertex is assigned a dense, stable int index on first insertion; the dense
// index fixes the order of Vertices and Neighbors, and downstream packages
// use it for canonical vertex-set keys (vset) and integer-indexed flow
// networks (flow). Adjacency itself is stored in maps keyed by V.
// The external identity V is always what AddVertex/Vertices/Neighbors return.
//
// Graph is thread-safe: muVert guards the vertex catalog and index table,
// muEdgeAdj guards adjacency. Mutation is expected to happen once, while a
// graph is being built (by builder or gridgraph); the separator enumerator
// itself only ever reads.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops are not supported")
)
