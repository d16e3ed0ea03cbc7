// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// Canonical constructor names, used to prefix errors with context.
const (
	MethodCycle             = "Cycle"
	MethodPath               = "Path"
	MethodComplete           = "Complete"
	MethodCompleteBipartite  = "CompleteBipartite"
	MethodRandomSparse       = "RandomSparse"
	MethodRandomRegular      = "RandomRegular"
)

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology:
// fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path: a path of
// fewer than 2 nodes has no edges.
const MinPathNodes = 2

// MinProbability is the lower bound for RandomSparse's edge probability p.
const MinProbability = 0.0

// MaxProbability is the upper bound for RandomSparse's edge probability p.
const MaxProbability = 1.0

// MinPartition is the smallest allowed size for either side of
// CompleteBipartite's partition.
const MinPartition = 1
