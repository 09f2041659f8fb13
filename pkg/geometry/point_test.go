package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceProperties(t *testing.T) {
	a := MakePoint(41.8708, -87.6505)
	b := MakePoint(41.8721, -87.6478)

	assert.Zero(t, a.DistanceTo(a))
	assert.Greater(t, a.DistanceTo(b), 0.0)
	assert.InDelta(t, a.DistanceTo(b), b.DistanceTo(a), 1e-12)
	assert.InDelta(t, a.DistanceTo(b), Distance(a.Lat(), a.Lon(), b.Lat(), b.Lon()), 1e-12)
}

func TestDistanceInMiles(t *testing.T) {
	// one degree of latitude is roughly 69 miles
	d := Distance(0, 0, 1, 0)
	assert.InDelta(t, 69.1, d, 0.5)
}

func TestCentroid(t *testing.T) {
	_, ok := Centroid(nil)
	assert.False(t, ok)

	c, ok := Centroid([]Point{MakePoint(1, 2), MakePoint(3, 4)})
	require.True(t, ok)
	assert.InDelta(t, 2.0, c.Lat(), 1e-12)
	assert.InDelta(t, 3.0, c.Lon(), 1e-12)
}

func TestValid(t *testing.T) {
	assert.True(t, MakePoint(41.87, -87.65).Valid())
	assert.False(t, MakePoint(91, 0).Valid())
	assert.False(t, MakePoint(0, -181).Valid())
}
