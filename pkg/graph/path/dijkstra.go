package path

import (
	"cmp"
	"context"
	"fmt"

	"github.com/natevvv/osm-campus-routing/pkg/graph"
	"github.com/natevvv/osm-campus-routing/pkg/queue"
)

// Dijkstra computes single-source shortest paths on a graph with
// non-negative arc weights. Non-negative weights are the caller's obligation;
// graph.WeightedGraph rejects negative weights on insertion, other Graph
// implementations must guarantee it themselves.
//
// The priority queue has no decrease-key: an improved vertex is pushed again
// and stale entries are skipped when popped. Vertices never pushed have
// distance +infinity, so the queue never holds an infinite entry.
//
// Search keeps all state in the returned SearchResult and can be called
// concurrently on a graph which is not mutated. ComputeShortestPath and the
// Get* accessors remember the last search and are not safe for concurrent use.
type Dijkstra[V cmp.Ordered, W graph.Weight] struct {
	g    graph.Graph[V, W]
	last *SearchResult[V, W]
}

func NewDijkstra[V cmp.Ordered, W graph.Weight](g graph.Graph[V, W]) *Dijkstra[V, W] {
	return &Dijkstra[V, W]{g: g}
}

// Search runs Dijkstra from origin. The context is checked between two pops
// of the priority queue.
func (d *Dijkstra[V, W]) Search(ctx context.Context, origin V, options SearchOptions[V]) (*SearchResult[V, W], error) {
	if !d.g.HasVertex(origin) {
		return nil, fmt.Errorf("%w: origin %v", ErrVertexNotFound, origin)
	}

	result := newSearchResult[V, W](origin)
	destination, hasDestination := options.Destination()
	maxSettled := options.MaxSettled()

	pq := queue.NewMinHeap(queue.NewQueueItem[V, W](origin, 0))
	result.KPIs.PqUpdates++

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		currentPqItem := pq.Pop()
		currentNodeId := currentPqItem.ItemId
		result.KPIs.PqPops++

		if result.IsSettled(currentNodeId) {
			result.KPIs.StaleEntries++
			continue
		}
		result.settle(currentNodeId)

		if hasDestination && currentNodeId == destination {
			break
		}

		currentDistance := result.distances[currentNodeId]
		for _, arc := range d.g.GetArcsFrom(currentNodeId) {
			result.KPIs.RelaxationAttempts++
			successor := arc.Destination()
			if result.IsSettled(successor) {
				continue
			}

			newDistance := currentDistance + arc.Cost()
			if oldDistance, seen := result.distances[successor]; seen && newDistance >= oldDistance {
				continue
			}
			result.distances[successor] = newDistance
			result.predecessors[successor] = currentNodeId
			pq.PushItem(successor, newDistance)
			result.KPIs.PqUpdates++
			result.KPIs.RelaxedEdges++
		}

		if maxSettled > 0 && len(result.Settled) >= maxSettled {
			result.Truncated = pq.Len() > 0
			break
		}
	}

	return result, nil
}

// Compute the shortest path from the origin to the destination and return its
// length. A missing path is reported as ErrUnreachable.
func (d *Dijkstra[V, W]) ComputeShortestPath(origin, destination V) (W, error) {
	var length W
	result, err := d.Search(context.Background(), origin, MakeSearchOptions[V]().SetDestination(destination))
	if err != nil {
		return length, err
	}
	d.last = result

	if !result.IsSettled(destination) {
		return length, ErrUnreachable
	}
	length, _ = result.Distance(destination)
	return length, nil
}

// GetPath returns the path of the previous computation, or an empty slice if
// the destination was not reached.
func (d *Dijkstra[V, W]) GetPath(origin, destination V) []V {
	if d.last == nil || d.last.Origin != origin {
		return []V{}
	}
	path, err := d.last.Path(destination)
	if err != nil {
		return []V{}
	}
	return path
}

func (d *Dijkstra[V, W]) GetSearchSpace() []V {
	if d.last == nil {
		return nil
	}
	return d.last.Settled
}

func (d *Dijkstra[V, W]) GetPqPops() int              { return d.kpis().PqPops }
func (d *Dijkstra[V, W]) GetPqUpdates() int           { return d.kpis().PqUpdates }
func (d *Dijkstra[V, W]) GetEdgeRelaxations() int     { return d.kpis().RelaxedEdges }
func (d *Dijkstra[V, W]) GetRelaxationAttempts() int  { return d.kpis().RelaxationAttempts }
func (d *Dijkstra[V, W]) GetGraph() graph.Graph[V, W] { return d.g }

func (d *Dijkstra[V, W]) kpis() SearchKPIs {
	if d.last == nil {
		return SearchKPIs{}
	}
	return d.last.KPIs
}
