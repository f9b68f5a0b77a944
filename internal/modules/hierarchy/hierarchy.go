// Package hierarchy builds the three-tier core/aggregation/edge node graph.
//
// Nodes are created once at build time with a random state matrix and a
// layer-specific fidelity threshold; edges fully connect adjacent layers and
// never change afterwards.
package hierarchy

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aristath/tsnn/pkg/formulas"
)

// Layer tags a node with its tier.
type Layer string

const (
	LayerCore        Layer = "core"
	LayerAggregation Layer = "aggregation"
	LayerEdge        Layer = "edge"
)

// Layers lists the tiers from the root down.
var Layers = []Layer{LayerCore, LayerAggregation, LayerEdge}

// FidelityThreshold is the constraint name every node carries.
const FidelityThreshold = "fidelity_threshold"

// layerSpec holds the per-layer build parameters
type layerSpec struct {
	prefix    string
	index     int
	threshold float64
}

var layerSpecs = map[Layer]layerSpec{
	LayerCore:        {prefix: "core", index: 0, threshold: 0.95},
	LayerAggregation: {prefix: "agg", index: 1, threshold: 0.90},
	LayerEdge:        {prefix: "edge", index: 2, threshold: 0.85},
}

// Position is a node's (layer index, ordinal) coordinate.
type Position struct {
	Layer   int
	Ordinal int
}

// Node is a vertex of the hierarchy.
type Node struct {
	ID          string
	Layer       Layer
	Position    Position
	State       *mat.Dense
	Constraints map[string]float64
}

// StrictestThreshold returns the largest threshold the node carries, or 0 without constraints.
func (n *Node) StrictestThreshold() float64 {
	strictest := 0.0
	for _, threshold := range n.Constraints {
		if threshold > strictest {
			strictest = threshold
		}
	}
	return strictest
}

// Edge connects two nodes in adjacent layers. From is always the upper layer.
type Edge struct {
	From string
	To   string
}

// Hierarchy is the built graph. It is not safe for concurrent use.
type Hierarchy struct {
	nodes     map[string]*Node
	order     []string
	edges     []Edge
	dimension int
}

// Build creates core+agg+edge nodes with dimension x dimension random states and
// the complete bipartite edge set between adjacent layers. Negative counts are
// treated as zero and a dimension below 1 as 1. src may be nil to use the global source.
func Build(coreCount, aggCount, edgeCount, dimension int, src rand.Source) *Hierarchy {
	if dimension < 1 {
		dimension = 1
	}
	h := &Hierarchy{
		nodes:     make(map[string]*Node),
		dimension: dimension,
	}

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}
	counts := map[Layer]int{
		LayerCore:        max(coreCount, 0),
		LayerAggregation: max(aggCount, 0),
		LayerEdge:        max(edgeCount, 0),
	}

	for _, layer := range Layers {
		spec := layerSpecs[layer]
		for i := 0; i < counts[layer]; i++ {
			data := make([]float64, dimension*dimension)
			for k := range data {
				data[k] = uniform.Rand()
			}
			h.addNode(&Node{
				ID:          nodeID(layer, i),
				Layer:       layer,
				Position:    Position{Layer: spec.index, Ordinal: i},
				State:       mat.NewDense(dimension, dimension, data),
				Constraints: map[string]float64{FidelityThreshold: spec.threshold},
			})
		}
	}

	h.connect(LayerCore, LayerAggregation, counts)
	h.connect(LayerAggregation, LayerEdge, counts)
	return h
}

func nodeID(layer Layer, i int) string {
	return fmt.Sprintf("%s_%d", layerSpecs[layer].prefix, i)
}

func (h *Hierarchy) addNode(n *Node) {
	h.nodes[n.ID] = n
	h.order = append(h.order, n.ID)
}

func (h *Hierarchy) connect(upper, lower Layer, counts map[Layer]int) {
	for i := 0; i < counts[upper]; i++ {
		for j := 0; j < counts[lower]; j++ {
			h.edges = append(h.edges, Edge{From: nodeID(upper, i), To: nodeID(lower, j)})
		}
	}
}

// Dimension returns the side length of every node state.
func (h *Hierarchy) Dimension() int {
	return h.dimension
}

// Node looks up a node by id.
func (h *Hierarchy) Node(id string) (*Node, bool) {
	n, ok := h.nodes[id]
	return n, ok
}

// Nodes returns all nodes in build order.
func (h *Hierarchy) Nodes() []*Node {
	out := make([]*Node, 0, len(h.order))
	for _, id := range h.order {
		out = append(out, h.nodes[id])
	}
	return out
}

// Edges returns a copy of the edge list in insertion order.
func (h *Hierarchy) Edges() []Edge {
	out := make([]Edge, len(h.edges))
	copy(out, h.edges)
	return out
}

// TotalNodes returns the number of nodes.
func (h *Hierarchy) TotalNodes() int {
	return len(h.order)
}

// TotalEdges returns the number of edges.
func (h *Hierarchy) TotalEdges() int {
	return len(h.edges)
}

// LogarithmicDepth returns log2 of the node count, 0 for an empty graph.
func (h *Hierarchy) LogarithmicDepth() float64 {
	return formulas.Log2(len(h.order))
}

// NodesInLayer returns the nodes tagged with layer in insertion order.
func (h *Hierarchy) NodesInLayer(layer Layer) []*Node {
	var out []*Node
	for _, id := range h.order {
		if n := h.nodes[id]; n.Layer == layer {
			out = append(out, n)
		}
	}
	return out
}

// LayerDistribution counts nodes per layer. Every layer is present, possibly with 0.
func (h *Hierarchy) LayerDistribution() map[Layer]int {
	dist := make(map[Layer]int, len(Layers))
	for _, layer := range Layers {
		dist[layer] = 0
	}
	for _, n := range h.nodes {
		dist[n.Layer]++
	}
	return dist
}

// Neighbors returns the ids connected to id in edge-insertion order.
// An unknown id has no neighbors.
func (h *Hierarchy) Neighbors(id string) []string {
	var out []string
	for _, e := range h.edges {
		switch id {
		case e.From:
			out = append(out, e.To)
		case e.To:
			out = append(out, e.From)
		}
	}
	return out
}
