package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ixgraph/codec"
	"github.com/katalvlaran/ixgraph/core"
)

func TestMarshal_NilGraph(t *testing.T) {
	_, err := codec.Marshal[string](nil)
	assert.ErrorIs(t, err, codec.ErrNilGraph)
}

func TestRoundTrip_PreservesTopologyAndWeights(t *testing.T) {
	g := core.NewGraph[string]()
	a, b, c := g.AddNode("A"), g.AddNode("B"), g.AddNode("C")
	_, err := g.AddEdge(a, b, core.WithWeight(3))
	require.NoError(t, err)
	_, err = g.AddEdge(b, c) // unweighted
	require.NoError(t, err)
	_, err = g.AddEdge(a, b, core.WithWeight(-2)) // parallel, negative weight
	require.NoError(t, err)

	data, err := codec.Marshal(g)
	require.NoError(t, err)
	back, err := codec.Unmarshal[string](data)
	require.NoError(t, err)

	assert.Equal(t, 3, back.NodeCount())
	assert.Equal(t, 3, back.EdgeCount())

	arcs, err := back.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, arcs, 2)
	assert.Equal(t, int64(3), arcs[0].Weight)
	assert.True(t, arcs[0].Weighted)
	assert.Equal(t, int64(-2), arcs[1].Weight)

	arcs, err = back.Neighbors(1)
	require.NoError(t, err)
	require.Len(t, arcs, 1)
	assert.False(t, arcs[0].Weighted, "unweighted must survive the trip")
	assert.Equal(t, int64(0), arcs[0].Weight)
}

// TestRoundTrip_CompactsTombstones: removals do not leak into the wire
// form; the decoded container restarts indices from zero.
func TestRoundTrip_CompactsTombstones(t *testing.T) {
	g := core.NewGraph[string]()
	a := g.AddNode("A")
	b := g.AddNode("B")
	c := g.AddNode("C")
	_, err := g.AddEdge(a, c, core.WithWeight(7))
	require.NoError(t, err)
	require.NoError(t, g.RemoveNode(b))

	data, err := codec.Marshal(g)
	require.NoError(t, err)
	back, err := codec.Unmarshal[string](data)
	require.NoError(t, err)

	assert.Equal(t, []core.NodeIndex{0, 1}, back.Nodes())
	gotA, err := back.NodeID(0)
	require.NoError(t, err)
	gotC, err := back.NodeID(1)
	require.NoError(t, err)
	assert.Equal(t, "A", gotA)
	assert.Equal(t, "C", gotC)

	arcs, err := back.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, arcs, 1)
	assert.Equal(t, core.NodeIndex(1), arcs[0].To)
	assert.Equal(t, int64(7), arcs[0].Weight)
}

func TestMarshal_Deterministic(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 5; i++ {
		g.AddNode(i * 10)
	}
	for i := 0; i < 4; i++ {
		_, err := g.AddEdge(core.NodeIndex(i), core.NodeIndex(i+1), core.WithWeight(int64(i)))
		require.NoError(t, err)
	}

	first, err := codec.Marshal(g)
	require.NoError(t, err)
	second, err := codec.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUnmarshal_HandWritten(t *testing.T) {
	doc := []byte(`
nodes: [origin, hub, sink]
edges:
  - {from: 0, to: 1, weight: 4}
  - {from: 1, to: 2}
`)
	g, err := codec.Unmarshal[string](doc)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	arcs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, arcs, 1)
	assert.True(t, arcs[0].Weighted)
	assert.Equal(t, int64(4), arcs[0].Weight)
}

func TestUnmarshal_Malformed(t *testing.T) {
	_, err := codec.Unmarshal[string]([]byte("nodes: [A, B, A]"))
	assert.ErrorIs(t, err, codec.ErrBadDocument, "duplicate identity")

	_, err = codec.Unmarshal[string]([]byte("nodes: [A]\nedges: [{from: 0, to: 5}]"))
	assert.ErrorIs(t, err, codec.ErrBadDocument, "endpoint out of range")

	_, err = codec.Unmarshal[string]([]byte("nodes: [A]\nedges: [{from: -1, to: 0}]"))
	assert.ErrorIs(t, err, codec.ErrBadDocument, "negative endpoint")

	_, err = codec.Unmarshal[string]([]byte("{unclosed"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, codec.ErrBadDocument, "syntax errors come from the yaml package")
}

// TestRoundTrip_CompositeKeys: any YAML-representable comparable identity
// works.
func TestRoundTrip_CompositeKeys(t *testing.T) {
	type Coord struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	}

	g := core.NewGraph[Coord]()
	p := g.AddNode(Coord{X: 1, Y: 2})
	q := g.AddNode(Coord{X: 3, Y: 4})
	_, err := g.AddEdge(p, q, core.WithWeight(9))
	require.NoError(t, err)

	data, err := codec.Marshal(g)
	require.NoError(t, err)
	back, err := codec.Unmarshal[Coord](data)
	require.NoError(t, err)

	id, err := back.NodeID(1)
	require.NoError(t, err)
	assert.Equal(t, Coord{X: 3, Y: 4}, id)
	assert.True(t, back.HasEdge(0))
}
