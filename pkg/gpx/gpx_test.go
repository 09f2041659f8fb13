package gpx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natevvv/osm-campus-routing/pkg/campus"
	"github.com/natevvv/osm-campus-routing/pkg/geometry"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

func testRoute() *routing.Route {
	return &routing.Route{
		Start:       &campus.Building{FullName: "Student Center East", Abbrev: "SCE", Coordinate: geometry.MakeCoordinate(200, 41.87, -87.65)},
		Destination: &campus.Building{FullName: "Science and Engineering Offices", Abbrev: "SEO", Coordinate: geometry.MakeCoordinate(201, 41.873, -87.65)},
		Reachable:   true,
		Path:        []int64{1, 2},
		Waypoints:   []geometry.Point{geometry.MakePoint(41.87, -87.65), geometry.MakePoint(41.8712345, -87.6512345)},
	}
}

func TestFromRoute(t *testing.T) {
	track := FromRoute(testRoute())
	assert.Equal(t, "Student Center East to Science and Engineering Offices", track.Name)
	require.Len(t, track.Waypoints, 2)
	assert.Equal(t, "Student Center East (SCE)", track.Waypoints[0].Name)
	assert.Len(t, track.Points, 2)

	assert.Empty(t, FromRoute(&routing.Route{}).Waypoints)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FromRoute(testRoute())))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("gpx")
	require.NotNil(t, root)
	assert.Equal(t, "1.1", root.SelectAttrValue("version", ""))
	assert.Equal(t, namespace, root.SelectAttrValue("xmlns", ""))

	wpts := root.SelectElements("wpt")
	require.Len(t, wpts, 2)
	assert.Equal(t, "Science and Engineering Offices (SEO)", wpts[1].SelectElement("name").Text())

	trkpts := root.FindElements("./trk/trkseg/trkpt")
	require.Len(t, trkpts, 2)
	assert.Equal(t, "41.8712345", trkpts[1].SelectAttrValue("lat", ""))
	assert.Equal(t, "-87.6512345", trkpts[1].SelectAttrValue("lon", ""))
}

func TestWriteFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "route.gpx")
	require.NoError(t, WriteFile(filename, Track{Points: []geometry.Point{geometry.MakePoint(1, 2)}}))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), `<trkpt lat="1.0000000" lon="2.0000000"/>`)
}
