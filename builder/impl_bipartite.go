// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   - n1 >= MinPartition and n2 >= MinPartition (else ErrTooFewVertices).
//   - Left partition IDs are "L0".."L{n1-1}", right partition "R0".."R{n2-1}".
//   - Emits every cross-pair L_i - R_j.
//   - Returns only sentinel errors; never panics at runtime.
package builder

import (
	"fmt"

	"github.com/arborist-go/impsep/core"
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg *builderConfig) error {
		if err := validatePartition(MethodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		left := makeIDs("L", n1)
		right := makeIDs("R", n2)
		for _, id := range left {
			g.AddVertex(id)
		}
		for _, id := range right {
			g.AddVertex(id)
		}

		for _, u := range left {
			for _, v := range right {
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s,%s): %w", MethodCompleteBipartite, u, v, err)
				}
			}
		}

		return nil
	}
}
