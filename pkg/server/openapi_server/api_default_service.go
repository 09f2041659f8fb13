package openapi_server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/natevvv/osm-campus-routing/pkg/campus"
	"github.com/natevvv/osm-campus-routing/pkg/geometry"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

type routeKey struct {
	from, to int64
}

// DefaultApiService is a service that implements the logic for the DefaultApiServicer
// This service should implement the business logic for every endpoint for the DefaultApi API.
// Include any external packages or services that will be required by this service.
type DefaultApiService struct {
	router   *routing.Router
	validate *validator.Validate
	cache    *lru.Cache[routeKey, routing.Route] // nil if caching is disabled
	logger   *slog.Logger
}

// NewDefaultApiService creates a default api service. Search results are
// cached per (start node, destination node) pair in an LRU cache of
// cacheSize entries; a cacheSize of 0 disables the cache.
func NewDefaultApiService(router *routing.Router, cacheSize int, logger *slog.Logger) (*DefaultApiService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &DefaultApiService{
		router:   router,
		validate: validator.New(),
		logger:   logger,
	}
	if cacheSize > 0 {
		cache, err := lru.New[routeKey, routing.Route](cacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "create route cache")
		}
		s.cache = cache
	}
	return s, nil
}

// ComputeRoute - Compute a route between two buildings
func (s *DefaultApiService) ComputeRoute(ctx context.Context, routeRequest RouteRequest) (ImplResponse, error) {
	start, err := s.router.ResolveBuilding(routeRequest.Start)
	if err != nil {
		return s.failure(ctx, errors.Wrapf(routing.ErrStartNotFound, "%q", routeRequest.Start))
	}
	destination, err := s.router.ResolveBuilding(routeRequest.Destination)
	if err != nil {
		return s.failure(ctx, errors.Wrapf(routing.ErrDestinationNotFound, "%q", routeRequest.Destination))
	}

	route, err := s.route(ctx, start.Coordinate.Point, destination.Coordinate.Point)
	if err != nil {
		return s.failure(ctx, err)
	}
	route.Start = &start
	route.Destination = &destination

	return Response(http.StatusOK, NewRouteResult(route)), nil
}

// ComputeCoordinateRoute - Compute a route between two positions
func (s *DefaultApiService) ComputeCoordinateRoute(ctx context.Context, routeRequest CoordinateRouteRequest) (ImplResponse, error) {
	if err := s.validate.Struct(routeRequest); err != nil {
		return s.failure(ctx, errors.Wrap(routing.ErrInvalidCoordinate, err.Error()))
	}

	route, err := s.route(ctx, routeRequest.Origin.Geometry(), routeRequest.Destination.Geometry())
	if err != nil {
		return s.failure(ctx, err)
	}
	return Response(http.StatusOK, NewRouteResult(route)), nil
}

func (s *DefaultApiService) GetBuildings(ctx context.Context) (ImplResponse, error) {
	buildings := make([]Building, 0)
	for _, b := range s.router.Buildings() {
		buildings = append(buildings, NewBuilding(b))
	}
	return Response(http.StatusOK, buildings), nil
}

func (s *DefaultApiService) ResolveBuilding(ctx context.Context, query string) (ImplResponse, error) {
	building, match, err := s.router.ResolveBuildingMatch(query)
	if err != nil {
		return s.failure(ctx, err)
	}
	return Response(http.StatusOK, BuildingMatch{Query: query, Match: match.String(), Building: NewBuilding(building)}), nil
}

func (s *DefaultApiService) GetNearestNode(ctx context.Context, point Point) (ImplResponse, error) {
	if err := s.validate.Struct(point); err != nil {
		return s.failure(ctx, errors.Wrap(routing.ErrInvalidCoordinate, err.Error()))
	}
	node, distance, err := s.router.NearestNode(point.Geometry())
	if err != nil {
		return s.failure(ctx, err)
	}
	return Response(http.StatusOK, NearestResult{Query: point, Node: NewNode(node), Distance: distance}), nil
}

func (s *DefaultApiService) GetNodes(ctx context.Context) (ImplResponse, error) {
	points := s.router.GetNodes()

	vertices := make([]Point, 0)
	for _, point := range points {
		vertices = append(vertices, NewPointFromGeometry(point))
	}
	nodes := Nodes{Waypoints: vertices}

	return Response(http.StatusOK, nodes), nil
}

func (s *DefaultApiService) GetStats(ctx context.Context) (ImplResponse, error) {
	stats := s.router.Stats()
	return Response(http.StatusOK, Stats(stats)), nil
}

// route looks up the footway nodes nearest to origin and target and searches
// between them, consulting the cache first.
func (s *DefaultApiService) route(ctx context.Context, origin, target geometry.Point) (routing.Route, error) {
	route := routing.Route{Origin: origin, Target: target}

	startNode, _, err := s.router.NearestNode(origin)
	if err != nil {
		return route, err
	}
	destinationNode, _, err := s.router.NearestNode(target)
	if err != nil {
		return route, err
	}
	route.StartNode = startNode
	route.DestinationNode = destinationNode

	key := routeKey{from: startNode.ID, to: destinationNode.ID}
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			LoggerFromContext(ctx, s.logger).Debug("route cache hit", slog.Int64("from", key.from), slog.Int64("to", key.to))
			cached.Origin = origin
			cached.Target = target
			return cached, nil
		}
	}

	route, err = s.router.RouteBetweenNodes(ctx, route)
	if err != nil {
		return route, err
	}
	if s.cache != nil {
		s.cache.Add(key, route)
	}
	return route, nil
}

// failure maps domain errors onto HTTP responses. Errors not known here are
// passed on to the controller's error handler.
func (s *DefaultApiService) failure(ctx context.Context, err error) (ImplResponse, error) {
	switch {
	case errors.Is(err, routing.ErrStartNotFound),
		errors.Is(err, routing.ErrDestinationNotFound),
		errors.Is(err, campus.ErrBuildingNotFound),
		errors.Is(err, routing.ErrNoFootways):
		return Response(http.StatusNotFound, ErrorBody{Message: err.Error()}), nil
	case errors.Is(err, routing.ErrInvalidCoordinate):
		return Response(http.StatusBadRequest, ErrorBody{Message: err.Error()}), nil
	}
	LoggerFromContext(ctx, s.logger).Error("request failed", slog.Any("error", err))
	return Response(http.StatusInternalServerError, nil), err
}
