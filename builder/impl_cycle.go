// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n >= MinCycleNodes (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i-(i+1)%n for i=0..n-1.
//   - Returns only sentinel errors; never panics at runtime.
package builder

import (
	"fmt"

	"github.com/arborist-go/impsep/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg *builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodCycle, u, v, err)
			}
		}

		return nil
	}
}
