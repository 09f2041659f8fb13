// Package gpx exports routes as GPX 1.1 documents.
package gpx

import (
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"github.com/pkg/errors"

	"github.com/natevvv/osm-campus-routing/pkg/geometry"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

const (
	namespace = "http://www.topografix.com/GPX/1/1"
	creator   = "campus-nav"
)

type Waypoint struct {
	Name  string
	Point geometry.Point
}

// Track is a single-segment GPX track plus optional named waypoints.
type Track struct {
	Name      string
	Waypoints []Waypoint
	Points    []geometry.Point
}

// FromRoute turns a reachable route into a track from the start building to
// the destination building through the footway nodes of the path.
func FromRoute(route *routing.Route) Track {
	track := Track{Points: route.Waypoints}
	if route.Start != nil && route.Destination != nil {
		track.Name = route.Start.FullName + " to " + route.Destination.FullName
		track.Waypoints = []Waypoint{
			{Name: route.Start.String(), Point: route.Start.Coordinate.Point},
			{Name: route.Destination.String(), Point: route.Destination.Coordinate.Point},
		}
	}
	return track
}

func NewDocument(track Track) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("gpx")
	root.CreateAttr("version", "1.1")
	root.CreateAttr("creator", creator)
	root.CreateAttr("xmlns", namespace)

	for _, wpt := range track.Waypoints {
		el := root.CreateElement("wpt")
		setLatLon(el, wpt.Point)
		el.CreateElement("name").SetText(wpt.Name)
	}

	trk := root.CreateElement("trk")
	if track.Name != "" {
		trk.CreateElement("name").SetText(track.Name)
	}
	seg := trk.CreateElement("trkseg")
	for _, p := range track.Points {
		setLatLon(seg.CreateElement("trkpt"), p)
	}

	doc.Indent(2)
	return doc
}

func setLatLon(el *etree.Element, p geometry.Point) {
	el.CreateAttr("lat", strconv.FormatFloat(p.Lat(), 'f', 7, 64))
	el.CreateAttr("lon", strconv.FormatFloat(p.Lon(), 'f', 7, 64))
}

func Write(w io.Writer, track Track) error {
	if _, err := NewDocument(track).WriteTo(w); err != nil {
		return errors.Wrap(err, "write gpx")
	}
	return nil
}

func WriteFile(filename string, track Track) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	defer file.Close()

	if err := Write(file, track); err != nil {
		return err
	}
	return file.Close()
}
