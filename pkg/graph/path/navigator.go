package path

import (
	"cmp"

	"github.com/natevvv/osm-campus-routing/pkg/graph"
)

type Navigator[V cmp.Ordered, W graph.Weight] interface {
	ComputeShortestPath(origin, destination V) (W, error) // Compute the shortest path from the origin to the destination
	GetPath(origin, destination V) []V                    // Get the path of a previous computation, from origin to destination
	GetSearchSpace() []V                                  // Returns the vertices settled by the previous computation, in settle order
	GetPqPops() int                                       // Returns the amount of priority queue/heap pops which were performed during the search
	GetPqUpdates() int                                    // Get the number of pq pushes
	GetEdgeRelaxations() int                              // Get the number of relaxed edges
	GetRelaxationAttempts() int                           // Get the number of attempted edge relaxations
	GetGraph() graph.Graph[V, W]                          // Get the used graph
}

// FindShortestPath computes the path and its length with a fresh navigator.
func FindShortestPath[V cmp.Ordered, W graph.Weight](g graph.Graph[V, W], origin, destination V) ([]V, W, error) {
	navigator := GetNavigator(g)
	length, err := navigator.ComputeShortestPath(origin, destination)
	if err != nil {
		return nil, length, err
	}
	return navigator.GetPath(origin, destination), length, nil
}

func GetNavigator[V cmp.Ordered, W graph.Weight](g graph.Graph[V, W]) Navigator[V, W] {
	return NewDijkstra(g)
}
