package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/natevvv/osm-campus-routing/internal/config"
	"github.com/natevvv/osm-campus-routing/internal/logs"
	"github.com/natevvv/osm-campus-routing/internal/osmmap"
	"github.com/natevvv/osm-campus-routing/pkg/geometry"
	"github.com/natevvv/osm-campus-routing/pkg/graph"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

func main() {
	mapFile := flag.String("map", "", "OSM map file (.osm or .pbf), overrides map.file")
	configFile := flag.String("config", "", "YAML config file")
	out := flag.String("out", "campus_graph.fmi", "write the footway graph in fmi format to this file")
	dump := flag.Bool("dump", false, "print vertices and edges of the graph")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *mapFile != "" {
		cfg.Map.File = *mapFile
	}
	logger, err := logs.New(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	m, err := osmmap.Load(context.Background(), cfg.Map.File, logger)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME] Load map: %s\n", time.Since(start))

	start = time.Now()
	g := routing.BuildGraph(m)
	fmt.Printf("[TIME] Build graph: %s\n", time.Since(start))
	fmt.Printf("Vertices: %d\n", g.NodeCount())
	fmt.Printf("Edges: %d\n", g.ArcCount())

	coords := make(map[graph.NodeId]geometry.Point, len(m.Nodes))
	for id, c := range m.Nodes {
		coords[id] = c.Point
	}

	start = time.Now()
	if err := graph.WriteFmiFile(*out, g, coords); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("[TIME] Write %s: %s\n", *out, time.Since(start))

	if *dump {
		w := bufio.NewWriter(os.Stdout)
		if err := g.Dump(w); err != nil {
			log.Fatal(err)
		}
		w.Flush()
	}
}
