package path

import (
	"cmp"
	"maps"

	"github.com/natevvv/osm-campus-routing/pkg/graph"
)

type SearchKPIs struct {
	PqPops             int `json:"pqPops"`             // amount of pops performed on the priority queue, stale entries included
	PqUpdates          int `json:"pqUpdates"`          // pushes to the priority queue
	RelaxationAttempts int `json:"relaxationAttempts"` // arcs looked at
	RelaxedEdges       int `json:"relaxedEdges"`       // arcs which improved a tentative distance
	StaleEntries       int `json:"staleEntries"`       // popped entries of already settled vertices
}

// SearchResult holds the tables of one search. A vertex missing from the
// distance table has distance +infinity; a vertex missing from the
// predecessor table has no predecessor (the origin and never reached
// vertices).
type SearchResult[V cmp.Ordered, W graph.Weight] struct {
	Origin V
	// Settled vertices in the order they were settled.
	Settled []V
	// Truncated is set if the search stopped because of the settled limit
	// while the frontier was not empty.
	Truncated bool
	KPIs      SearchKPIs

	distances    map[V]W
	predecessors map[V]V
	settled      map[V]struct{}
}

func newSearchResult[V cmp.Ordered, W graph.Weight](origin V) *SearchResult[V, W] {
	return &SearchResult[V, W]{
		Origin:       origin,
		distances:    map[V]W{origin: 0},
		predecessors: make(map[V]V),
		settled:      make(map[V]struct{}),
	}
}

func (r *SearchResult[V, W]) settle(v V) {
	r.settled[v] = struct{}{}
	r.Settled = append(r.Settled, v)
}

// Distance returns the best known distance from the origin to v.
// For settled vertices this is the length of the shortest path.
func (r *SearchResult[V, W]) Distance(v V) (W, bool) {
	d, ok := r.distances[v]
	return d, ok
}

func (r *SearchResult[V, W]) Predecessor(v V) (V, bool) {
	p, ok := r.predecessors[v]
	return p, ok
}

func (r *SearchResult[V, W]) IsSettled(v V) bool {
	_, ok := r.settled[v]
	return ok
}

// Distances returns a copy of the distance table.
func (r *SearchResult[V, W]) Distances() map[V]W {
	return maps.Clone(r.distances)
}

// Predecessors returns a copy of the predecessor table.
func (r *SearchResult[V, W]) Predecessors() map[V]V {
	return maps.Clone(r.predecessors)
}

// Path returns the shortest path from the origin to destination.
// A destination which was not settled yields ErrUnreachable, or
// ErrSearchIncomplete if the search was truncated.
func (r *SearchResult[V, W]) Path(destination V) ([]V, error) {
	if !r.IsSettled(destination) {
		if r.Truncated {
			return nil, ErrSearchIncomplete
		}
		return nil, ErrUnreachable
	}
	return Reconstruct(r.predecessors, r.Origin, destination)
}
