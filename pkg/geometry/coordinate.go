package geometry

import "fmt"

// Coordinate is an identified position on the map. It is used both for raw
// map nodes and for building locations.
type Coordinate struct {
	ID int64
	Point
}

func MakeCoordinate(id int64, lat, lon float64) Coordinate {
	return Coordinate{ID: id, Point: MakePoint(lat, lon)}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%d %v", c.ID, c.Point)
}
