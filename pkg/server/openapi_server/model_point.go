// SPDX-License-Identifier: MIT

package openapi_server

import "github.com/natevvv/osm-campus-routing/pkg/geometry"

type Point struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon float64 `json:"lon" validate:"gte=-180,lte=180"`
}

func NewPointFromGeometry(p geometry.Point) Point {
	return Point{Lat: p.Lat(), Lon: p.Lon()}
}

func (p Point) Geometry() geometry.Point {
	return geometry.MakePoint(p.Lat, p.Lon)
}

// Node is a footway node with its OSM id.
type Node struct {
	ID int64 `json:"id"`
	Point
}

func NewNode(c geometry.Coordinate) Node {
	return Node{ID: c.ID, Point: NewPointFromGeometry(c.Point)}
}
