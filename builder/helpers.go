// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies over core.Graph[string].
package builder

import (
	"fmt"
	"strconv"

	"github.com/arborist-go/impsep/core"
)

// addSequentialVertices inserts vertices with IDs "0".."n-1" into g.
// Idempotent: re-adding an existing vertex is a no-op in core.Graph.
func addSequentialVertices(g *core.Graph[string], n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(strconv.Itoa(i))
	}
}

// addVerticesWithIDFn adds vertices idFn(0..n-1).
func addVerticesWithIDFn(g *core.Graph[string], n int, idFn IDFn) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

// addCompleteEdges connects every unordered pair in ids with an edge.
func addCompleteEdges(g *core.Graph[string], ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := g.AddEdge(ids[i], ids[j]); err != nil {
				return fmt.Errorf("addCompleteEdges: AddEdge(%s,%s): %w", ids[i], ids[j], err)
			}
		}
	}

	return nil
}

// makeIDs generates n vertex IDs by concatenating prefix and index.
// Example: makeIDs("L",3) -> {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = prefix + strconv.Itoa(i)
	}

	return ids
}
