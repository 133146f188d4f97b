package converters_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/csrgraph/converters"
	"github.com/katalvlaran/csrgraph/csr"
	"github.com/katalvlaran/csrgraph/topology"
)

func TestToDirected_EdgesMatch(t *testing.T) {
	t.Parallel()

	g := csr.NewGraph[int]()
	require.NoError(t, topology.Emit[int](g, nil, topology.Grid[int](3, 4)))
	require.NoError(t, g.Compress(14, false))

	dg, err := converters.ToDirected[int](g)
	require.NoError(t, err)
	require.Equal(t, 14, dg.Nodes().Len(), "padding rows become isolated nodes")
	require.Equal(t, g.NumEdges(), dg.Edges().Len())

	start, cols := g.StartPointers(), g.ColumnIndices()
	for r := 0; r+1 < len(start); r++ {
		for _, c := range cols[start[r]:start[r+1]] {
			require.True(t, dg.HasEdgeFromTo(int64(r), int64(c)))
		}
	}

	require.True(t, topo.PathExistsIn(dg, dg.Node(0), dg.Node(11)))
	require.False(t, topo.PathExistsIn(dg, dg.Node(0), dg.Node(12)))
}

func TestToDirected_ColumnOnlyVertex(t *testing.T) {
	t.Parallel()

	g := csr.NewGraph[int]()
	g.AddConnection(0, 5)
	require.NoError(t, g.Compress(1, false))

	dg, err := converters.ToDirected[int](g)
	require.NoError(t, err)
	require.Equal(t, 2, dg.Nodes().Len())
	require.True(t, dg.HasEdgeFromTo(0, 5))
}

func TestToDirected_SelfLoop(t *testing.T) {
	t.Parallel()

	g := csr.NewGraph[int](csr.WithSelfConnections())
	g.AddConnection(0, 1)
	g.AddConnection(1, 1)
	require.NoError(t, g.Compress(2, false))

	_, err := converters.ToDirected[int](g)
	require.ErrorIs(t, err, converters.ErrSelfLoop)
}

func TestFromDirected_RoundTrip(t *testing.T) {
	t.Parallel()

	dg := simple.NewDirectedGraph()
	dg.SetEdge(simple.Edge{F: simple.Node(3), T: simple.Node(0)})
	dg.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(2)})
	dg.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	dg.AddNode(simple.Node(5))

	g := csr.NewTrackedGraph[int64]()
	require.Equal(t, 3, converters.FromDirected[int64](dg, g))
	require.NoError(t, g.Compress(6, false))

	require.Equal(t, []int{0, 2, 2, 2, 3, 3, 3}, g.StartPointers())
	require.Equal(t, []int64{1, 2, 0}, g.ColumnIndices())
	require.Equal(t, []int{0, 1, 2}, g.CompressedIndexMap())

	back, err := converters.ToDirected[int64](g)
	require.NoError(t, err)
	require.Equal(t, 3, back.Edges().Len())
	require.True(t, back.HasEdgeFromTo(3, 0))
}
