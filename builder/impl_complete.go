// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits each unordered pair {i,j} with i<j exactly once.
//   - Returns only sentinel errors; never panics at runtime.
package builder

import (
	"fmt"

	"github.com/arborist-go/impsep/core"
)

const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg *builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := addVerticesWithIDFn(g, n, cfg.idFn)

		return addCompleteEdges(g, ids)
	}
}
