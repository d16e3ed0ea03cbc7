package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/impsep/flow"
	"github.com/arborist-go/impsep/vset"
)

func TestFurthestMinCut_SymmetricInSourceAndSink(t *testing.T) {
	g := diamond(t)

	_, forward, err := flow.FurthestMinCut[string](g, vset.Of("s"), vset.Of("t"), vset.Empty[string](), 2)
	require.NoError(t, err)

	_, backward, err := flow.FurthestMinCut[string](g, vset.Of("t"), vset.Of("s"), vset.Empty[string](), 2)
	require.NoError(t, err)

	require.Equal(t, forward.Len(), backward.Len())
}

func TestFurthestMinCut_DeletedVerticesExcludedFromCut(t *testing.T) {
	g := diamond(t)

	ok, rMax, err := flow.FurthestMinCut[string](g, vset.Of("s"), vset.Of("t"), vset.Of("a"), 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, rMax.Contains("a"), "a deleted vertex can never appear in R_max")
}

// diamond's only size-2 min cut is {a,b}; after removing it, only s itself
// remains reachable from s, so R_max must be exactly {s}.
func TestFurthestMinCut_DiamondRMaxIsSourceOnly(t *testing.T) {
	g := diamond(t)

	ok, rMax, err := flow.FurthestMinCut[string](g, vset.Of("s"), vset.Of("t"), vset.Empty[string](), 2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, rMax.Len())
	require.True(t, rMax.Contains("s"))
}
