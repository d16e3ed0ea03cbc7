// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n >= MinPathNodes (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)-(i) for i=1..n-1 in stable increasing order.
//   - Returns only sentinel errors; never panics at runtime.
package builder

import (
	"fmt"

	"github.com/arborist-go/impsep/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg *builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}

		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodPath, u, v, err)
			}
		}

		return nil
	}
}
