package componentsize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/impsep/componentsize"
	"github.com/arborist-go/impsep/core"
	"github.com/arborist-go/impsep/vset"
)

func TestSize_ChainSeparatedInMiddle(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "d"))

	require.Equal(t, 2, componentsize.Size[string](g, "a", vset.Of("c")))
	require.Equal(t, 4, componentsize.Size[string](g, "a", vset.Empty[string]()))
}

func TestSize_SourceInSeparator(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("a", "b"))
	require.Equal(t, 0, componentsize.Size[string](g, "a", vset.Of("a")))
}
