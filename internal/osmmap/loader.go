// Package osmmap reads OpenStreetMap extracts (.osm XML or .pbf) into a
// campus.Map: all nodes, the walking footways and the university buildings.
package osmmap

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/natevvv/osm-campus-routing/pkg/campus"
	"github.com/natevvv/osm-campus-routing/pkg/geometry"
)

const footwayValue = "footway"

// Load opens filename and reads it as PBF if the extension is .pbf, as OSM XML
// otherwise.
func Load(ctx context.Context, filename string, logger *slog.Logger) (*campus.Map, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open map %s", filename)
	}
	defer file.Close()

	var m *campus.Map
	if strings.EqualFold(filepath.Ext(filename), ".pbf") {
		m, err = ReadPBF(ctx, file, logger)
	} else {
		m, err = ReadXML(ctx, file, logger)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load map %s", filename)
	}
	return m, nil
}

// IsFootway reports whether a way with the given tag lookup is a walking path.
func IsFootway(tag func(key string) string) bool {
	return tag("highway") == footwayValue || tag("area:highway") == footwayValue
}

// IsBuilding reports whether a way with the given tag lookup is a university
// building.
func IsBuilding(tag func(key string) string) bool {
	return tag("building") == "university"
}

// ParseBuildingName splits "Full Name (ABBR)" into its two parts. Names
// without a trailing parenthesized abbreviation are returned unchanged with an
// empty abbreviation.
func ParseBuildingName(name string) (fullName, abbrev string) {
	name = strings.TrimSpace(name)
	if !strings.HasSuffix(name, ")") {
		return name, ""
	}
	open := strings.LastIndex(name, "(")
	if open <= 0 {
		return name, ""
	}
	abbrev = strings.TrimSpace(name[open+1 : len(name)-1])
	fullName = strings.TrimSpace(name[:open])
	if abbrev == "" || fullName == "" {
		return name, ""
	}
	return fullName, abbrev
}

type rawWay struct {
	id    int64
	name  string
	nodes []int64
}

// builder accumulates decoded elements. Ways are resolved against the node
// table only once the whole file has been read, so element order in the file
// does not matter.
type builder struct {
	logger    *slog.Logger
	nodes     map[int64]geometry.Coordinate
	footways  []rawWay
	buildings []rawWay
}

func newBuilder(logger *slog.Logger) *builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &builder{
		logger: logger,
		nodes:  make(map[int64]geometry.Coordinate),
	}
}

func (b *builder) addNode(id int64, lat, lon float64) {
	b.nodes[id] = geometry.MakeCoordinate(id, lat, lon)
}

func (b *builder) addWay(id int64, nodes []int64, tag func(key string) string) {
	switch {
	case IsFootway(tag):
		b.footways = append(b.footways, rawWay{id: id, nodes: nodes})
	case IsBuilding(tag):
		name := tag("name")
		if name == "" {
			b.logger.Debug("skipping unnamed building", slog.Int64("way", id))
			return
		}
		b.buildings = append(b.buildings, rawWay{id: id, name: name, nodes: nodes})
	}
}

func (b *builder) finish() *campus.Map {
	m := campus.NewMap()
	m.Nodes = b.nodes

	dropped := 0
	for _, way := range b.footways {
		refs := make([]int64, 0, len(way.nodes))
		for _, id := range way.nodes {
			if _, ok := b.nodes[id]; !ok {
				dropped++
				continue
			}
			refs = append(refs, id)
		}
		m.Footways = append(m.Footways, campus.Footway{ID: way.id, Nodes: refs})
	}
	if dropped > 0 {
		b.logger.Warn("dropped footway references to unknown nodes", slog.Int("refs", dropped))
	}

	for _, way := range b.buildings {
		points := make([]geometry.Point, 0, len(way.nodes))
		for _, id := range way.nodes {
			if c, ok := b.nodes[id]; ok {
				points = append(points, c.Point)
			}
		}
		center, ok := geometry.Centroid(points)
		if !ok {
			b.logger.Warn("skipping building without known nodes", slog.Int64("way", way.id), slog.String("name", way.name))
			continue
		}
		fullName, abbrev := ParseBuildingName(way.name)
		m.Buildings = append(m.Buildings, campus.Building{
			FullName:   fullName,
			Abbrev:     abbrev,
			Coordinate: geometry.MakeCoordinate(way.id, center.Lat(), center.Lon()),
		})
	}

	points := make([]geometry.Point, 0, len(m.Nodes))
	for _, c := range m.Nodes {
		points = append(points, c.Point)
	}
	bound := geometry.Bound(points)
	b.logger.Info("map loaded",
		slog.Int("nodes", len(m.Nodes)),
		slog.Int("footways", len(m.Footways)),
		slog.Int("buildings", len(m.Buildings)),
		slog.Any("min", bound.Min),
		slog.Any("max", bound.Max),
	)
	return m
}

func canceled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
