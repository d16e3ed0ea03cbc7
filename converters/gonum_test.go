package converters_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/arborist-go/impsep/converters"
	"github.com/arborist-go/impsep/core"
)

func TestToGonum_ConnectivityMatches(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	g.AddVertex("isolated")

	gg, ids := converters.ToGonum[string](g)

	components := topo.ConnectedComponents(gg)
	require.Len(t, components, 2)

	var isolatedComponent, mainComponent int
	for _, comp := range components {
		if len(comp) == 1 && comp[0].ID() == ids["isolated"] {
			isolatedComponent++
		}
		if len(comp) == 3 {
			mainComponent++
		}
	}
	require.Equal(t, 1, isolatedComponent)
	require.Equal(t, 1, mainComponent)
}
