// Package campus holds the records of a loaded campus map and resolves user
// queries (building names, arbitrary positions) to footway nodes.
package campus

import (
	"fmt"

	"github.com/natevvv/osm-campus-routing/pkg/geometry"
)

// Footway is an ordered sequence of node ids forming a walking path.
type Footway struct {
	ID    int64
	Nodes []int64
}

// Building is a named, located entity. Abbrev is empty if the map does not
// carry one.
type Building struct {
	FullName   string
	Abbrev     string
	Coordinate geometry.Coordinate
}

func (b Building) String() string {
	if b.Abbrev == "" {
		return b.FullName
	}
	return fmt.Sprintf("%s (%s)", b.FullName, b.Abbrev)
}

// Map is the content of a loaded map file. It is built once and read-only
// afterwards.
type Map struct {
	Nodes     map[int64]geometry.Coordinate
	Footways  []Footway
	Buildings []Building
}

func NewMap() *Map {
	return &Map{Nodes: make(map[int64]geometry.Coordinate)}
}

// FootwayNodes returns every node occurrence of every footway, in footway
// order. Nodes shared by several footways occur several times; references to
// unknown nodes are skipped.
func (m *Map) FootwayNodes() []geometry.Coordinate {
	coords := make([]geometry.Coordinate, 0)
	for _, footway := range m.Footways {
		for _, id := range footway.Nodes {
			if c, ok := m.Nodes[id]; ok {
				coords = append(coords, c)
			}
		}
	}
	return coords
}
