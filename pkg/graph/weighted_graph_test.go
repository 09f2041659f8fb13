package graph

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTriangle() *WeightedGraph[int64, float64] {
	g := NewWeightedGraph[int64, float64]()
	for _, v := range []int64{3, 1, 2} {
		g.AddVertex(v)
	}
	g.AddEdge(1, 2, 5)
	g.AddEdge(2, 3, 2)
	g.AddEdge(1, 3, 10)
	return g
}

func TestAddVertex(t *testing.T) {
	g := NewWeightedGraph[int64, float64]()
	assert.True(t, g.AddVertex(7))
	assert.False(t, g.AddVertex(7))
	assert.Equal(t, 1, g.NodeCount())
	assert.True(t, g.HasVertex(7))
	assert.False(t, g.HasVertex(8))
}

func TestAddEdgeRequiresEndpoints(t *testing.T) {
	g := NewWeightedGraph[int64, float64]()
	g.AddVertex(1)
	assert.False(t, g.AddEdge(1, 2, 1))
	assert.False(t, g.AddEdge(2, 1, 1))
	assert.Zero(t, g.ArcCount())
}

func TestAddEdgeRejectsInvalidWeights(t *testing.T) {
	g := NewWeightedGraph[int64, float64]()
	g.AddVertex(1)
	g.AddVertex(2)
	assert.False(t, g.AddEdge(1, 2, -0.5))
	assert.False(t, g.AddEdge(1, 2, math.NaN()))
	assert.True(t, g.AddEdge(1, 2, 0))
	assert.Equal(t, 1, g.ArcCount())
}

func TestAddEdgeIdempotent(t *testing.T) {
	g := newTriangle()
	before := g.ArcCount()
	assert.True(t, g.AddEdge(1, 2, 5))
	assert.Equal(t, before, g.ArcCount())
}

func TestAddEdgeOverwrites(t *testing.T) {
	g := newTriangle()
	before := g.ArcCount()
	assert.True(t, g.AddEdge(1, 2, 8))
	assert.Equal(t, before, g.ArcCount())

	w, ok := g.GetWeight(1, 2)
	require.True(t, ok)
	assert.Equal(t, 8.0, w)
	assert.Equal(t, []int64{2, 3}, g.Neighbors(1))
}

func TestEdgesAreDirected(t *testing.T) {
	g := newTriangle()
	_, ok := g.GetWeight(2, 1)
	assert.False(t, ok)
	_, ok = g.GetWeight(4, 1)
	assert.False(t, ok)
}

func TestNeighbors(t *testing.T) {
	g := newTriangle()
	assert.Equal(t, []int64{2, 3}, g.Neighbors(1))
	assert.Empty(t, g.Neighbors(3))
	assert.Empty(t, g.Neighbors(42))
}

func TestVerticesIsSnapshot(t *testing.T) {
	g := newTriangle()
	vertices := g.Vertices()
	assert.Equal(t, []int64{1, 2, 3}, vertices)

	g.AddVertex(0)
	assert.Equal(t, []int64{1, 2, 3}, vertices)
	assert.Equal(t, []int64{0, 1, 2, 3}, g.Vertices())
}

func TestArcCountIsSumOfOutDegrees(t *testing.T) {
	g := newTriangle()
	g.AddEdge(3, 1, 1)
	g.AddEdge(3, 1, 2)
	sum := 0
	for _, v := range g.Vertices() {
		sum += len(g.Neighbors(v))
	}
	assert.Equal(t, sum, g.ArcCount())
	assert.Equal(t, 4, g.ArcCount())
}

func TestIntegerWeights(t *testing.T) {
	g := NewWeightedGraph[string, int]()
	g.AddVertex("a")
	g.AddVertex("b")
	assert.False(t, g.AddEdge("a", "b", -1))
	assert.True(t, g.AddEdge("a", "b", 4))
	w, ok := g.GetWeight("a", "b")
	assert.True(t, ok)
	assert.Equal(t, 4, w)
}

func TestFreeze(t *testing.T) {
	g := newTriangle()
	frozen := g.Freeze()

	assert.Equal(t, g.NodeCount(), frozen.NodeCount())
	assert.Equal(t, g.ArcCount(), frozen.ArcCount())
	assert.Equal(t, g.AsString(), frozen.AsString())
	for _, v := range g.Vertices() {
		assert.Equal(t, g.Neighbors(v), frozen.Neighbors(v))
		assert.Equal(t, g.GetArcsFrom(v), frozen.GetArcsFrom(v))
	}

	w, ok := frozen.GetWeight(1, 3)
	assert.True(t, ok)
	assert.Equal(t, 10.0, w)
	_, ok = frozen.GetWeight(3, 1)
	assert.False(t, ok)
	assert.Empty(t, frozen.Neighbors(99))

	// the snapshot is independent from later mutations
	g.AddEdge(3, 1, 1)
	assert.Equal(t, 3, frozen.ArcCount())
}

func TestDump(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, newTriangle().Dump(&sb))
	out := sb.String()
	assert.Contains(t, out, "**Num vertices: 3")
	assert.Contains(t, out, "**Num edges: 3")
	assert.Contains(t, out, " 1 -> 3 (10)")
}

func TestGraphAsString(t *testing.T) {
	assert.Equal(t, "3\n3\n1 2 5\n1 3 10\n2 3 2\n", newTriangle().AsString())
}
