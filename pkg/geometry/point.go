package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const metersPerMile = 1609.344

// Point is a position in degrees. It wraps an orb.Point, which stores [lon, lat].
type Point struct {
	p orb.Point
}

func MakePoint(lat, lon float64) Point {
	return Point{p: orb.Point{lon, lat}}
}

func NewPoint(lat, lon float64) *Point {
	p := MakePoint(lat, lon)
	return &p
}

func (p Point) Lat() float64 { return p.p.Lat() }
func (p Point) Lon() float64 { return p.p.Lon() }

// Orb returns the underlying orb point.
func (p Point) Orb() orb.Point { return p.p }

// Valid reports whether the point lies in the lat/lon value range.
func (p Point) Valid() bool {
	lat, lon := p.Lat(), p.Lon()
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Return the great-circle distance to the other point in miles
func (p Point) DistanceTo(other Point) float64 {
	return geo.DistanceHaversine(p.p, other.p) / metersPerMile
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.Lat(), p.Lon())
}

// Distance is the distance function used to weight footway edges and to find
// nearest nodes. It is symmetric, non-negative and zero for identical points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return MakePoint(lat1, lon1).DistanceTo(MakePoint(lat2, lon2))
}

// Centroid returns the average position of the given points.
// The second return value is false if no points are given.
func Centroid(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	var lat, lon float64
	for _, p := range points {
		lat += p.Lat()
		lon += p.Lon()
	}
	n := float64(len(points))
	return MakePoint(lat/n, lon/n), true
}

// Bound returns the bounding box of the given points.
func Bound(points []Point) orb.Bound {
	mp := make(orb.MultiPoint, 0, len(points))
	for _, p := range points {
		mp = append(mp, p.p)
	}
	return mp.Bound()
}
