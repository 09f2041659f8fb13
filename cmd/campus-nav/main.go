package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/natevvv/osm-campus-routing/internal/config"
	"github.com/natevvv/osm-campus-routing/internal/console"
	"github.com/natevvv/osm-campus-routing/internal/logs"
	"github.com/natevvv/osm-campus-routing/internal/osmmap"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

func main() {
	mapFile := flag.String("map", "", "OSM map file (.osm or .pbf), asked for interactively if empty")
	configFile := flag.String("config", "", "YAML config file")
	gpxFile := flag.String("gpx", "", "write the last found route to this GPX file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logs.New(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in := bufio.NewScanner(os.Stdin)
	filename := *mapFile
	if filename == "" {
		filename = console.PromptMapFile(in, os.Stdout, cfg.Map.File)
	}

	m, err := osmmap.Load(ctx, filename, logger)
	if err != nil {
		fmt.Println("**Error: unable to load open street map.")
		fmt.Println()
		logger.Error("loading map failed", "error", err)
		os.Exit(1)
	}

	router := routing.NewRouter(m, routing.WithLogger(logger), routing.WithMaxSettled(cfg.Map.MaxSettled))
	console.PrintStats(os.Stdout, router.Stats())

	session := console.NewSession(router, in, os.Stdout, *gpxFile, logger)
	if err := session.Run(ctx); err != nil {
		logger.Error("navigation failed", "error", err)
		os.Exit(1)
	}
}
