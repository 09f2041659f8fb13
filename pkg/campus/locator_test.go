package campus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natevvv/osm-campus-routing/pkg/geometry"
)

func testMap() *Map {
	m := NewMap()
	for _, c := range []geometry.Coordinate{
		geometry.MakeCoordinate(10, 41.8700, -87.6500),
		geometry.MakeCoordinate(11, 41.8705, -87.6500),
		geometry.MakeCoordinate(12, 41.8710, -87.6500),
		geometry.MakeCoordinate(13, 41.8710, -87.6490),
		geometry.MakeCoordinate(99, 41.8000, -87.6000), // not on a footway
	} {
		m.Nodes[c.ID] = c
	}
	m.Footways = []Footway{
		{ID: 1, Nodes: []int64{10, 11, 12}},
		{ID: 2, Nodes: []int64{12, 13, 404}},
	}
	return m
}

func TestFootwayNodes(t *testing.T) {
	ids := make([]int64, 0)
	for _, c := range testMap().FootwayNodes() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{10, 11, 12, 12, 13}, ids)
}

func TestNearestExactNode(t *testing.T) {
	locator := NewFootwayLocator(testMap())
	assert.Equal(t, 5, locator.Size())

	node, distance, ok := locator.Nearest(geometry.MakePoint(41.8705, -87.6500))
	require.True(t, ok)
	assert.Equal(t, int64(11), node.ID)
	assert.Zero(t, distance)
}

func TestNearestIgnoresNodesOffFootways(t *testing.T) {
	locator := NewFootwayLocator(testMap())
	node, distance, ok := locator.Nearest(geometry.MakePoint(41.8001, -87.6001))
	require.True(t, ok)
	assert.NotEqual(t, int64(99), node.ID)
	assert.Equal(t, int64(10), node.ID)
	assert.Greater(t, distance, 0.0)
}

func TestNearestTieFirstWins(t *testing.T) {
	locator := NewLinearScan([]geometry.Coordinate{
		geometry.MakeCoordinate(2, 0, 1),
		geometry.MakeCoordinate(1, 0, -1),
	})
	node, _, ok := locator.Nearest(geometry.MakePoint(0, 0))
	require.True(t, ok)
	assert.Equal(t, int64(2), node.ID)
}

func TestNearestEmpty(t *testing.T) {
	_, _, ok := NewLinearScan(nil).Nearest(geometry.MakePoint(0, 0))
	assert.False(t, ok)
}
