package openapi_server

import (
	"github.com/natevvv/osm-campus-routing/pkg/graph/path"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

type RouteResult struct {
	Start           *Building       `json:"start,omitempty"`
	Destination     *Building       `json:"destination,omitempty"`
	Origin          Point           `json:"origin"`
	Target          Point           `json:"target"`
	StartNode       Node            `json:"startNode"`
	DestinationNode Node            `json:"destinationNode"`
	Reachable       bool            `json:"reachable"`
	Distance        float64         `json:"distance"`
	Path            []int64         `json:"path"`
	Waypoints       []Point         `json:"waypoints"`
	KPIs            path.SearchKPIs `json:"kpis"`
}

func NewRouteResult(route routing.Route) RouteResult {
	result := RouteResult{
		Origin:          NewPointFromGeometry(route.Origin),
		Target:          NewPointFromGeometry(route.Target),
		StartNode:       NewNode(route.StartNode),
		DestinationNode: NewNode(route.DestinationNode),
		Reachable:       route.Reachable,
		Distance:        route.Distance,
		Path:            make([]int64, 0, len(route.Path)),
		Waypoints:       make([]Point, 0, len(route.Waypoints)),
		KPIs:            route.KPIs,
	}
	if route.Start != nil {
		b := NewBuilding(*route.Start)
		result.Start = &b
	}
	if route.Destination != nil {
		b := NewBuilding(*route.Destination)
		result.Destination = &b
	}
	result.Path = append(result.Path, route.Path...)
	for _, waypoint := range route.Waypoints {
		result.Waypoints = append(result.Waypoints, NewPointFromGeometry(waypoint))
	}
	return result
}

type NearestResult struct {
	Query    Point   `json:"query"`
	Node     Node    `json:"node"`
	Distance float64 `json:"distance"`
}

type ErrorBody struct {
	Message string `json:"message"`
}
