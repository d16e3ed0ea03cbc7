// Package gridgraph treats a rectangular 2D grid of integer cell values as a
// core.Graph[[2]int]: one vertex per cell, an edge between every pair of
// orthogonally (or, with Conn8, diagonally) adjacent cells. Cells below
// LandThreshold are holes -- excluded from the graph entirely, the way a
// punched-out region of the demo grid has no vertices and no edges.
//
// LinkBoundarySink is the one piece of assembly specific to the separator
// demo: it adds a single auxiliary vertex and connects it to every
// boundary cell (row 0, last row, column 0, or last column) that survived
// the hole punch, giving the enumerator a ready-made sink terminal t.
//
// Complexity: ToCoreGraph is O(W*H*d), d the neighbor count (4 or 8).
//
// Errors: ErrEmptyGrid (no rows/columns), ErrNonRectangular (ragged rows).
package gridgraph
