package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/natevvv/osm-campus-routing/pkg/campus"
	"github.com/natevvv/osm-campus-routing/pkg/geometry"
	"github.com/natevvv/osm-campus-routing/pkg/graph"
	"github.com/natevvv/osm-campus-routing/pkg/graph/path"
)

var (
	ErrStartNotFound       = errors.New("start building not found")
	ErrDestinationNotFound = errors.New("destination building not found")
	ErrInvalidCoordinate   = errors.New("invalid coordinate")
	ErrNoFootways          = errors.New("map contains no footway nodes")
)

// Route is the answer to one query. An unreachable destination is a regular
// outcome: Reachable is false and Path is empty.
type Route struct {
	Start           *campus.Building // nil for coordinate queries
	Destination     *campus.Building
	Origin          geometry.Point // queried positions
	Target          geometry.Point
	StartNode       geometry.Coordinate // nearest footway nodes
	DestinationNode geometry.Coordinate
	Reachable       bool
	Distance        float64 // miles
	Path            []graph.NodeId
	Waypoints       []geometry.Point
	KPIs            path.SearchKPIs
}

type Stats struct {
	Nodes     int
	Footways  int
	Buildings int
	Vertices  int
	Edges     int
}

// Router answers routing queries on one loaded map. The graph and the indices
// are read-only after NewRouter, every query owns its own search tables, so a
// Router can serve concurrent queries.
type Router struct {
	campusMap  *campus.Map
	graph      graph.Graph[graph.NodeId, float64]
	buildings  *campus.BuildingIndex
	locator    campus.NodeLocator
	dijkstra   *path.Dijkstra[graph.NodeId, float64]
	maxSettled int
	logger     *slog.Logger
}

type Option func(*Router)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// WithLocator replaces the linear scan over footway nodes.
func WithLocator(locator campus.NodeLocator) Option {
	return func(r *Router) { r.locator = locator }
}

// WithMaxSettled bounds the number of vertices a single query may settle.
func WithMaxSettled(n int) Option {
	return func(r *Router) { r.maxSettled = n }
}

// BuildGraph adds every map node as a vertex and, for each pair of
// consecutive footway nodes, one arc in each direction weighted by the
// distance between them. Pairs referencing unknown nodes are skipped.
func BuildGraph(m *campus.Map) *graph.FootwayGraph {
	g := graph.NewWeightedGraph[graph.NodeId, float64]()
	for id := range m.Nodes {
		g.AddVertex(id)
	}

	for _, footway := range m.Footways {
		for i := 0; i+1 < len(footway.Nodes); i++ {
			node1, ok1 := m.Nodes[footway.Nodes[i]]
			node2, ok2 := m.Nodes[footway.Nodes[i+1]]
			if !ok1 || !ok2 {
				continue
			}
			g.AddEdge(node1.ID, node2.ID, node1.DistanceTo(node2.Point))
			g.AddEdge(node2.ID, node1.ID, node2.DistanceTo(node1.Point))
		}
	}
	return g
}

// Create a new router for the given map
func NewRouter(m *campus.Map, opts ...Option) *Router {
	r := &Router{campusMap: m}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.locator == nil {
		r.locator = campus.NewFootwayLocator(m)
	}

	r.graph = BuildGraph(m).Freeze()
	r.buildings = campus.NewBuildingIndex(m.Buildings)
	r.dijkstra = path.NewDijkstra(r.graph)

	stats := r.Stats()
	r.logger.Info("router ready",
		slog.Int("nodes", stats.Nodes),
		slog.Int("footways", stats.Footways),
		slog.Int("buildings", stats.Buildings),
		slog.Int("vertices", stats.Vertices),
		slog.Int("edges", stats.Edges))
	return r
}

func (r *Router) Stats() Stats {
	return Stats{
		Nodes:     len(r.campusMap.Nodes),
		Footways:  len(r.campusMap.Footways),
		Buildings: r.buildings.Len(),
		Vertices:  r.graph.NodeCount(),
		Edges:     r.graph.ArcCount(),
	}
}

func (r *Router) Graph() graph.Graph[graph.NodeId, float64] {
	return r.graph
}

// Buildings returns all buildings in resolution order.
func (r *Router) Buildings() []campus.Building {
	return r.buildings.Buildings()
}

func (r *Router) ResolveBuilding(query string) (campus.Building, error) {
	return r.buildings.Resolve(query)
}

// ResolveBuildingMatch is ResolveBuilding that also reports which rule matched.
func (r *Router) ResolveBuildingMatch(query string) (campus.Building, campus.Match, error) {
	return r.buildings.ResolveMatch(query)
}

// NearestNode returns the footway node closest to p and its distance in miles.
func (r *Router) NearestNode(p geometry.Point) (geometry.Coordinate, float64, error) {
	if !p.Valid() {
		return geometry.Coordinate{}, 0, fmt.Errorf("%w: %v", ErrInvalidCoordinate, p)
	}
	node, distance, ok := r.locator.Nearest(p)
	if !ok {
		return geometry.Coordinate{}, 0, ErrNoFootways
	}
	return node, distance, nil
}

// Navigate resolves both building queries and computes the walking route
// between the footway nodes nearest to them.
func (r *Router) Navigate(ctx context.Context, startQuery, destinationQuery string) (Route, error) {
	start, err := r.buildings.Resolve(startQuery)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q", ErrStartNotFound, startQuery)
	}
	destination, err := r.buildings.Resolve(destinationQuery)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q", ErrDestinationNotFound, destinationQuery)
	}

	route, err := r.ComputeRoute(ctx, start.Coordinate.Point, destination.Coordinate.Point)
	if err != nil {
		return route, err
	}
	route.Start = &start
	route.Destination = &destination
	return route, nil
}

// ComputeRoute computes the walking route between the footway nodes nearest
// to the two positions.
func (r *Router) ComputeRoute(ctx context.Context, origin, target geometry.Point) (Route, error) {
	route := Route{Origin: origin, Target: target}

	startNode, _, err := r.NearestNode(origin)
	if err != nil {
		return route, err
	}
	destinationNode, _, err := r.NearestNode(target)
	if err != nil {
		return route, err
	}
	route.StartNode = startNode
	route.DestinationNode = destinationNode

	return r.RouteBetweenNodes(ctx, route)
}

// RouteBetweenNodes runs the search between route.StartNode and
// route.DestinationNode and fills in the result.
func (r *Router) RouteBetweenNodes(ctx context.Context, route Route) (Route, error) {
	options := path.MakeSearchOptions[graph.NodeId]().
		SetDestination(route.DestinationNode.ID).
		SetMaxSettled(r.maxSettled)

	result, err := r.dijkstra.Search(ctx, route.StartNode.ID, options)
	if err != nil {
		return route, err
	}
	route.KPIs = result.KPIs

	nodes, err := result.Path(route.DestinationNode.ID)
	if errors.Is(err, path.ErrUnreachable) {
		r.logger.Debug("destination unreachable",
			slog.Int64("start", route.StartNode.ID),
			slog.Int64("destination", route.DestinationNode.ID))
		return route, nil
	}
	if err != nil {
		return route, err
	}

	route.Reachable = true
	route.Distance, _ = result.Distance(route.DestinationNode.ID)
	route.Path = nodes
	route.Waypoints = r.buildWaypoints(nodes)
	return route, nil
}

func (r *Router) buildWaypoints(nodes []graph.NodeId) []geometry.Point {
	waypoints := make([]geometry.Point, 0, len(nodes))
	for _, id := range nodes {
		if c, ok := r.campusMap.Nodes[id]; ok {
			waypoints = append(waypoints, c.Point)
		}
	}
	return waypoints
}

// GetNodes returns the positions of all footway nodes.
func (r *Router) GetNodes() []geometry.Point {
	coords := r.campusMap.FootwayNodes()
	seen := make(map[int64]struct{}, len(coords))
	points := make([]geometry.Point, 0, len(coords))
	for _, c := range coords {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		points = append(points, c.Point)
	}
	return points
}
