package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborist-go/impsep/builder"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())

	_, err = builder.BuildGraph(nil, builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount())

	_, err = builder.BuildGraph(nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
}

func TestCompleteBipartite(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.CompleteBipartite(2, 3))
	require.NoError(t, err)
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())

	_, err = builder.BuildGraph(nil, builder.CompleteBipartite(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	g1, err := builder.BuildGraph(opts, builder.RandomSparse(10, 0.4))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(opts, builder.RandomSparse(10, 0.4))
	require.NoError(t, err)
	require.Equal(t, g1.EdgeCount(), g2.EdgeCount())
}

func TestRandomSparse_FullAndEmpty(t *testing.T) {
	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1.0))
	require.NoError(t, err)
	require.Equal(t, 10, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0.0))
	require.NoError(t, err)
	require.Equal(t, 0, empty.EdgeCount())
}

func TestRandomRegular(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	g, err := builder.BuildGraph(opts, builder.RandomRegular(6, 3))
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount())
	require.Equal(t, 9, g.EdgeCount())

	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		require.Equal(t, 3, d)
	}

	_, err = builder.BuildGraph(nil, builder.RandomRegular(4, 1))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
