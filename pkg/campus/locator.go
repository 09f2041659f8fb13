package campus

import (
	"math"

	"github.com/natevvv/osm-campus-routing/pkg/geometry"
)

// NodeLocator finds the graph vertex closest to an arbitrary position.
// LinearScan is enough at campus scale; a grid or k-d tree implementation
// can be plugged in for larger maps.
type NodeLocator interface {
	// Nearest returns the closest node and its distance in miles. ok is false
	// if the locator holds no nodes.
	Nearest(p geometry.Point) (node geometry.Coordinate, distance float64, ok bool)
}

// LinearScan compares the query position with every candidate node.
// On equal distance the first candidate wins.
type LinearScan struct {
	candidates []geometry.Coordinate
}

func NewLinearScan(candidates []geometry.Coordinate) *LinearScan {
	return &LinearScan{candidates: candidates}
}

// NewFootwayLocator scans all footway node occurrences of the map.
func NewFootwayLocator(m *Map) *LinearScan {
	return NewLinearScan(m.FootwayNodes())
}

func (ls *LinearScan) Nearest(p geometry.Point) (geometry.Coordinate, float64, bool) {
	best := geometry.Coordinate{}
	bestDistance := math.Inf(1)
	found := false
	for _, c := range ls.candidates {
		if d := p.DistanceTo(c.Point); d < bestDistance {
			best, bestDistance, found = c, d, true
		}
	}
	if !found {
		return geometry.Coordinate{}, 0, false
	}
	return best, bestDistance, true
}

func (ls *LinearScan) Size() int { return len(ls.candidates) }
