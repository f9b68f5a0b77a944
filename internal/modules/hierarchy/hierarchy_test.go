package hierarchy

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() rand.Source {
	return rand.NewPCG(7, 11)
}

func TestBuild_Counts(t *testing.T) {
	tests := []struct {
		core, agg, edge int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{0, 3, 0},
		{2, 0, 5},
		{1, 1, 1},
		{4, 8, 16},
		{3, 5, 2},
	}

	for _, tt := range tests {
		h := Build(tt.core, tt.agg, tt.edge, 4, testSource())
		assert.Equal(t, tt.core+tt.agg+tt.edge, h.TotalNodes())
		assert.Equal(t, tt.core*tt.agg+tt.agg*tt.edge, h.TotalEdges())
		assert.Len(t, h.Nodes(), h.TotalNodes())
	}
}

func TestBuild_DefaultScenario(t *testing.T) {
	h := Build(4, 8, 16, 4, testSource())

	assert.Equal(t, 28, h.TotalNodes())
	assert.Equal(t, 160, h.TotalEdges())
	assert.InDelta(t, 4.807, h.LogarithmicDepth(), 1e-3)
	assert.Equal(t, map[Layer]int{LayerCore: 4, LayerAggregation: 8, LayerEdge: 16}, h.LayerDistribution())
}

func TestBuild_NodeFields(t *testing.T) {
	h := Build(2, 2, 2, 3, testSource())

	tests := []struct {
		id        string
		layer     Layer
		pos       Position
		threshold float64
	}{
		{"core_0", LayerCore, Position{0, 0}, 0.95},
		{"core_1", LayerCore, Position{0, 1}, 0.95},
		{"agg_1", LayerAggregation, Position{1, 1}, 0.90},
		{"edge_0", LayerEdge, Position{2, 0}, 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			n, ok := h.Node(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.layer, n.Layer)
			assert.Equal(t, tt.pos, n.Position)
			assert.Equal(t, tt.threshold, n.Constraints[FidelityThreshold])
			assert.Equal(t, tt.threshold, n.StrictestThreshold())

			r, c := n.State.Dims()
			assert.Equal(t, 3, r)
			assert.Equal(t, 3, c)
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					v := n.State.At(i, j)
					assert.GreaterOrEqual(t, v, 0.0)
					assert.Less(t, v, 1.0)
				}
			}
		})
	}
}

func TestBuild_NegativeCountsAreEmpty(t *testing.T) {
	h := Build(-1, -2, 3, 0, nil)
	assert.Equal(t, 3, h.TotalNodes())
	assert.Equal(t, 0, h.TotalEdges())
	assert.Equal(t, 1, h.Dimension())
}

func TestBuild_EdgesOnlyConnectAdjacentLayers(t *testing.T) {
	h := Build(2, 3, 4, 2, testSource())

	for _, e := range h.Edges() {
		from, ok := h.Node(e.From)
		require.True(t, ok)
		to, ok := h.Node(e.To)
		require.True(t, ok)
		assert.Equal(t, 1, to.Position.Layer-from.Position.Layer, "edge %v skips or stays in a layer", e)
	}
}

func TestLogarithmicDepth(t *testing.T) {
	assert.Equal(t, 0.0, Build(0, 0, 0, 4, nil).LogarithmicDepth())
	assert.Equal(t, 0.0, Build(1, 0, 0, 4, nil).LogarithmicDepth())
	assert.Equal(t, 2.0, Build(1, 1, 2, 4, nil).LogarithmicDepth())
}

func TestNodesInLayer_PreservesOrder(t *testing.T) {
	h := Build(1, 3, 1, 2, testSource())

	var ids []string
	for _, n := range h.NodesInLayer(LayerAggregation) {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"agg_0", "agg_1", "agg_2"}, ids)
	assert.Empty(t, Build(0, 0, 0, 2, nil).NodesInLayer(LayerEdge))
}

func TestNeighbors(t *testing.T) {
	h := Build(2, 2, 2, 2, testSource())

	assert.Equal(t, []string{"agg_0", "agg_1"}, h.Neighbors("core_0"))
	assert.Equal(t, []string{"core_0", "core_1", "edge_0", "edge_1"}, h.Neighbors("agg_1"))
	assert.Equal(t, []string{"agg_0", "agg_1"}, h.Neighbors("edge_1"))
	assert.Empty(t, h.Neighbors("missing"))
}

func TestEdges_ReturnsCopy(t *testing.T) {
	h := Build(1, 1, 0, 2, testSource())

	edges := h.Edges()
	edges[0] = Edge{From: "x", To: "y"}
	assert.Equal(t, Edge{From: "core_0", To: "agg_0"}, h.Edges()[0])
}

func TestBuild_SeededIsReproducible(t *testing.T) {
	a := Build(1, 1, 1, 2, rand.NewPCG(1, 2))
	b := Build(1, 1, 1, 2, rand.NewPCG(1, 2))

	na, _ := a.Node("edge_0")
	nb, _ := b.Node("edge_0")
	assert.Equal(t, na.State.RawMatrix().Data, nb.State.RawMatrix().Data)
}
