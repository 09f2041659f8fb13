package graph

import (
	"cmp"
	"fmt"
	"strings"
)

// NodeId identifies a map node. OSM node ids are 64 bit.
type NodeId = int64

// Weight is the set of numeric types an edge can carry.
type Weight interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Graph is the read-only view the path finding works on.
// Neighbors, Vertices and GetArcsFrom are ordered ascending by vertex id.
type Graph[V cmp.Ordered, W Weight] interface {
	HasVertex(v V) bool
	Vertices() []V
	Neighbors(v V) []V
	GetWeight(from, to V) (W, bool)
	GetArcsFrom(v V) []Arc[V, W]
	NodeCount() int
	ArcCount() int
}

// DynamicGraph is a Graph which can be extended.
type DynamicGraph[V cmp.Ordered, W Weight] interface {
	Graph[V, W]
	AddVertex(v V) bool
	AddEdge(from, to V, weight W) bool
}

// ValidWeight reports whether w can be used as an edge weight.
// Dijkstra requires non-negative weights, NaN is rejected as well.
func ValidWeight[W Weight](w W) bool {
	return w >= 0 && w == w
}

// Return a human readable listing of the graph: vertex count, arc count,
// then one "from to weight" line per arc.
func GraphAsString[V cmp.Ordered, W Weight](g Graph[V, W]) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%v\n", g.NodeCount()))
	sb.WriteString(fmt.Sprintf("%v\n", g.ArcCount()))

	for _, v := range g.Vertices() {
		for _, arc := range g.GetArcsFrom(v) {
			sb.WriteString(fmt.Sprintf("%v %v %v\n", v, arc.Destination(), arc.Cost()))
		}
	}
	return sb.String()
}
