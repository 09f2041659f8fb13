package osmmap

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/pkg/errors"
	"github.com/qedus/osmpbf"

	"github.com/natevvv/osm-campus-routing/pkg/campus"
)

// ReadPBF reads an OSM protobuf extract. Blobs are decoded on GOMAXPROCS
// goroutines.
func ReadPBF(ctx context.Context, r io.Reader, logger *slog.Logger) (*campus.Map, error) {
	b := newBuilder(logger)

	decoder := osmpbf.NewDecoder(r)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)
	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return nil, errors.Wrap(err, "start pbf decoder")
	}

	for {
		if err := canceled(ctx); err != nil {
			return nil, err
		}
		v, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode pbf")
		}
		switch v := v.(type) {
		case *osmpbf.Node:
			b.addNode(v.ID, v.Lat, v.Lon)
		case *osmpbf.Way:
			b.addWay(v.ID, v.NodeIDs, tagLookup(v.Tags))
		}
	}
	return b.finish(), nil
}

func tagLookup(tags map[string]string) func(string) string {
	return func(key string) string { return tags[key] }
}
