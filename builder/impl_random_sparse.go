// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdos-Renyi-like generator. For each unordered pair {i,j}, i<j,
// include the edge independently with probability p.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism: stable trial order (i asc, j>i asc) makes the sampled graph
// fully determined by n, p, and the RNG's seed.
package builder

import (
	"fmt"

	"github.com/arborist-go/impsep/core"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples an Erdos-Renyi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg *builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids := addVerticesWithIDFn(g, n, cfg.idFn)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				include := p == 1.0
				if cfg.rng != nil {
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodRandomSparse, ids[i], ids[j], err)
				}
			}
		}

		return nil
	}
}
