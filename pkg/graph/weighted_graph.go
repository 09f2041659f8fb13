package graph

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
)

// WeightedGraph is a directed graph stored as a map from vertex to its
// out-arcs, each out-arc set being a map from neighbor to weight.
// The neighbor set is derived from the keys of that map, so weight lookup
// and neighbor enumeration cannot get out of sync.
//
// WeightedGraph is not safe for concurrent mutation. Once built, it can be
// shared read-only or frozen into an AdjacencyArrayGraph.
type WeightedGraph[V cmp.Ordered, W Weight] struct {
	adjacency map[V]map[V]W
	arcCount  int // sum of the out-degrees
}

func NewWeightedGraph[V cmp.Ordered, W Weight]() *WeightedGraph[V, W] {
	return &WeightedGraph[V, W]{adjacency: make(map[V]map[V]W)}
}

// Add a vertex without arcs. Returns false if the vertex is already present.
func (wg *WeightedGraph[V, W]) AddVertex(v V) bool {
	if _, ok := wg.adjacency[v]; ok {
		return false
	}
	wg.adjacency[v] = make(map[V]W)
	return true
}

// AddEdge inserts the arc from -> to, or overwrites its weight if the arc
// exists already. It fails if one of the endpoints is absent or the weight is
// negative (or NaN).
func (wg *WeightedGraph[V, W]) AddEdge(from, to V, weight W) bool {
	arcs, ok := wg.adjacency[from]
	if !ok {
		return false
	}
	if _, ok := wg.adjacency[to]; !ok {
		return false
	}
	if !ValidWeight(weight) {
		return false
	}
	if _, exists := arcs[to]; !exists {
		wg.arcCount++
	}
	arcs[to] = weight
	return true
}

func (wg *WeightedGraph[V, W]) HasVertex(v V) bool {
	_, ok := wg.adjacency[v]
	return ok
}

// GetWeight returns the weight of the arc from -> to. The second return value
// is false if either vertex or the arc does not exist.
func (wg *WeightedGraph[V, W]) GetWeight(from, to V) (W, bool) {
	w, ok := wg.adjacency[from][to]
	return w, ok
}

// Neighbors returns the targets of the out-arcs of v in ascending order.
// An absent vertex has no neighbors.
func (wg *WeightedGraph[V, W]) Neighbors(v V) []V {
	return slices.Sorted(maps.Keys(wg.adjacency[v]))
}

// Vertices returns a sorted copy of all vertex ids.
func (wg *WeightedGraph[V, W]) Vertices() []V {
	return slices.Sorted(maps.Keys(wg.adjacency))
}

// GetArcsFrom returns the out-arcs of v ordered by destination.
func (wg *WeightedGraph[V, W]) GetArcsFrom(v V) []Arc[V, W] {
	targets := wg.adjacency[v]
	arcs := make([]Arc[V, W], 0, len(targets))
	for _, to := range slices.Sorted(maps.Keys(targets)) {
		arcs = append(arcs, MakeArc(to, targets[to]))
	}
	return arcs
}

// Return the number of vertices
func (wg *WeightedGraph[V, W]) NodeCount() int {
	return len(wg.adjacency)
}

// Return the number of arcs
func (wg *WeightedGraph[V, W]) ArcCount() int {
	return wg.arcCount
}

func (wg *WeightedGraph[V, W]) AsString() string {
	return GraphAsString[V, W](wg)
}

// Dump writes the internal state of the graph for debugging purposes.
func (wg *WeightedGraph[V, W]) Dump(w io.Writer) error {
	return DumpGraph[V, W](w, wg)
}

// Freeze copies the graph into an immutable adjacency array.
func (wg *WeightedGraph[V, W]) Freeze() *AdjacencyArrayGraph[V, W] {
	return NewAdjacencyArrayFromGraph[V, W](wg)
}

// DumpGraph writes counts, vertices and arcs of g to w.
func DumpGraph[V cmp.Ordered, W Weight](w io.Writer, g Graph[V, W]) error {
	if _, err := fmt.Fprintf(w, "**Num vertices: %d\n**Num edges: %d\n\n**Vertices:\n", g.NodeCount(), g.ArcCount()); err != nil {
		return err
	}
	vertices := g.Vertices()
	for i, v := range vertices {
		if _, err := fmt.Fprintf(w, " %d. %v\n", i, v); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, "\n**Edges:\n"); err != nil {
		return err
	}
	for _, v := range vertices {
		for _, arc := range g.GetArcsFrom(v) {
			if _, err := fmt.Fprintf(w, " %v -> %v (%v)\n", v, arc.To, arc.Weight); err != nil {
				return err
			}
		}
	}
	return nil
}
