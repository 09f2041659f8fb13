package osmmap

import (
	"context"
	"io"
	"log/slog"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"

	"github.com/natevvv/osm-campus-routing/pkg/campus"
)

// ReadXML reads an .osm XML document.
func ReadXML(ctx context.Context, r io.Reader, logger *slog.Logger) (*campus.Map, error) {
	b := newBuilder(logger)

	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			b.addNode(int64(o.ID), o.Lat, o.Lon)
		case *osm.Way:
			refs := make([]int64, 0, len(o.Nodes))
			for _, n := range o.Nodes {
				refs = append(refs, int64(n.ID))
			}
			b.addWay(int64(o.ID), refs, o.Tags.Find)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan osm xml")
	}
	if err := canceled(ctx); err != nil {
		return nil, err
	}
	return b.finish(), nil
}
