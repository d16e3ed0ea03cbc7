package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/flow"
	"github.com/arborist-go/impsep/vset"
)

// diamond builds s-a-t, s-b-t: two internally disjoint s-t paths through a
// and b, so the minimum vertex cut separating s from t has size 2.
func diamond(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	mustEdge := func(u, v string) {
		require.NoError(t, g.AddEdge(u, v))
	}
	mustEdge("s", "a")
	mustEdge("s", "b")
	mustEdge("a", "t")
	mustEdge("b", "t")

	return g
}

func TestBuildSplitNetwork_RejectsOverlappingTerminals(t *testing.T) {
	g := diamond(t)
	_, err := flow.BuildSplitNetwork(g, vset.Of("s"), vset.Of("s"), vset.Empty[string](), 1)
	require.ErrorIs(t, err, flow.ErrTerminalOverlap)
}

func TestBuildSplitNetwork_RejectsNonPositiveK(t *testing.T) {
	g := diamond(t)
	_, err := flow.BuildSplitNetwork(g, vset.Of("s"), vset.Of("t"), vset.Empty[string](), 0)
	require.ErrorIs(t, err, flow.ErrInvalidCapacity)
}

func TestFurthestMinCut_DiamondNeedsTwo(t *testing.T) {
	g := diamond(t)

	ok, _, err := flow.FurthestMinCut[string](g, vset.Of("s"), vset.Of("t"), vset.Empty[string](), 1)
	require.NoError(t, err)
	require.False(t, ok, "one vertex cannot separate s from t in a diamond")

	ok, rMax, err := flow.FurthestMinCut[string](g, vset.Of("s"), vset.Of("t"), vset.Empty[string](), 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, rMax.Len(), "R_max is the source side left after removing {a,b}: just s itself")
	require.True(t, rMax.Contains("s"))
}
