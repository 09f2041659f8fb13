package graph

import (
	"cmp"
	"io"
	"slices"
	"sort"
)

// Implementation for static graphs. The vertices are stored sorted, the arcs
// of vertex i are arcs[Offsets[i]:Offsets[i+1]], sorted by destination.
// It is never mutated after construction, so it can be shared between
// concurrent searches.
type AdjacencyArrayGraph[V cmp.Ordered, W Weight] struct {
	nodes   []V
	index   map[V]int
	arcs    []Arc[V, W]
	Offsets []int
}

// Create an AdjacencyArrayGraph from the given graph
func NewAdjacencyArrayFromGraph[V cmp.Ordered, W Weight](g Graph[V, W]) *AdjacencyArrayGraph[V, W] {
	nodes := g.Vertices()
	index := make(map[V]int, len(nodes))
	arcs := make([]Arc[V, W], 0, g.ArcCount())
	offsets := make([]int, len(nodes)+1)

	for i, v := range nodes {
		index[v] = i
		arcs = append(arcs, g.GetArcsFrom(v)...)
		offsets[i+1] = len(arcs)
	}

	return &AdjacencyArrayGraph[V, W]{nodes: nodes, index: index, arcs: arcs, Offsets: offsets}
}

func (aag *AdjacencyArrayGraph[V, W]) HasVertex(v V) bool {
	_, ok := aag.index[v]
	return ok
}

// Vertices returns a copy of the sorted vertex ids.
func (aag *AdjacencyArrayGraph[V, W]) Vertices() []V {
	return slices.Clone(aag.nodes)
}

// Get the Arcs for the given vertex. The returned slice must not be modified.
func (aag *AdjacencyArrayGraph[V, W]) GetArcsFrom(v V) []Arc[V, W] {
	i, ok := aag.index[v]
	if !ok {
		return nil
	}
	return aag.arcs[aag.Offsets[i]:aag.Offsets[i+1]]
}

func (aag *AdjacencyArrayGraph[V, W]) Neighbors(v V) []V {
	var neighbors []V
	for _, arc := range aag.GetArcsFrom(v) {
		neighbors = append(neighbors, arc.To)
	}
	return neighbors
}

func (aag *AdjacencyArrayGraph[V, W]) GetWeight(from, to V) (W, bool) {
	arcs := aag.GetArcsFrom(from)
	j := sort.Search(len(arcs), func(k int) bool { return arcs[k].To >= to })
	if j < len(arcs) && arcs[j].To == to {
		return arcs[j].Weight, true
	}
	var zero W
	return zero, false
}

// Returns the number of vertices in the graph
func (aag *AdjacencyArrayGraph[V, W]) NodeCount() int {
	return len(aag.nodes)
}

// Returns the total number of arcs in the graph
func (aag *AdjacencyArrayGraph[V, W]) ArcCount() int {
	return len(aag.arcs)
}

func (aag *AdjacencyArrayGraph[V, W]) AsString() string {
	return GraphAsString[V, W](aag)
}

func (aag *AdjacencyArrayGraph[V, W]) Dump(w io.Writer) error {
	return DumpGraph[V, W](w, aag)
}
