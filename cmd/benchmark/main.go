package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/natevvv/osm-campus-routing/internal/logs"
	"github.com/natevvv/osm-campus-routing/internal/osmmap"
	"github.com/natevvv/osm-campus-routing/pkg/graph"
	p "github.com/natevvv/osm-campus-routing/pkg/graph/path"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

// target: origin, destination, reference length (negative if unreachable), #hops
type target struct {
	origin, destination graph.NodeId
	length              float64
	hops                int
}

func main() {
	graphFile := flag.String("graph", "", "fmi graph file written by graph-builder")
	mapFile := flag.String("map", "", "OSM map file, used when no graph file is given")
	targetFile := flag.String("targets", "targets.txt", "file with benchmark targets")
	useRandomTargets := flag.Bool("random", false, "Create (new) random targets")
	amountTargets := flag.Int("n", 100, "How many new targets should get created")
	seed := flag.Int64("seed", 0, "seed for random targets, 0 uses the current time")
	storeTargets := flag.Bool("store", false, "Store targets (when newly generated)")
	cpuProfile := flag.String("cpu", "", "write cpu profile to file")
	flag.Parse()

	start := time.Now()
	g := loadGraph(*graphFile, *mapFile)
	fmt.Printf("[TIME-Import] = %s\n", time.Since(start))
	fmt.Printf("Vertices: %d, Edges: %d\n", g.NodeCount(), g.ArcCount())

	var targets []target
	if *useRandomTargets {
		targets = createTargets(*amountTargets, *seed, g)
		if *storeTargets {
			writeTargets(targets, *targetFile)
		}
	} else {
		targets = readTargets(*targetFile)
		if *amountTargets < len(targets) {
			targets = targets[0:*amountTargets]
		}
	}
	if len(targets) == 0 {
		log.Fatal("no targets")
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	benchmark(p.GetNavigator(g), targets)
}

func loadGraph(graphFile, mapFile string) graph.Graph[graph.NodeId, float64] {
	if graphFile != "" {
		g, _, err := graph.NewWeightedGraphFromFmiFile(graphFile)
		if err != nil {
			log.Fatal(err)
		}
		return g.Freeze()
	}
	if mapFile == "" {
		log.Fatal("either -graph or -map is required")
	}
	m, err := osmmap.Load(context.Background(), mapFile, logs.Discard())
	if err != nil {
		log.Fatal(err)
	}
	return routing.BuildGraph(m).Freeze()
}

func readTargets(filename string) []target {
	file, err := os.Open(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	targets := make([]target, 0)

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}
		var t target
		if _, err := fmt.Sscanf(line, "%d %d %g %d", &t.origin, &t.destination, &t.length, &t.hops); err != nil {
			log.Fatalf("malformed target %q: %v", line, err)
		}
		targets = append(targets, t)
	}
	return targets
}

// createTargets picks random vertex pairs and solves them with a full search
// (no early exit) as reference.
func createTargets(n int, seed int64, g graph.Graph[graph.NodeId, float64]) []target {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	vertices := g.Vertices()
	reference := p.NewDijkstra(g)

	targets := make([]target, n)
	for i := 0; i < n; i++ {
		origin := vertices[rng.Intn(len(vertices))]
		destination := vertices[rng.Intn(len(vertices))]
		result, err := reference.Search(context.Background(), origin, p.MakeSearchOptions[graph.NodeId]())
		if err != nil {
			log.Fatal(err)
		}
		t := target{origin: origin, destination: destination, length: -1}
		if nodes, err := result.Path(destination); err == nil {
			t.length, _ = result.Distance(destination)
			t.hops = len(nodes)
		}
		targets[i] = t
	}
	return targets
}

func writeTargets(targets []target, targetFile string) {
	var sb strings.Builder
	sb.WriteString("# origin destination length hops\n")
	for _, t := range targets {
		sb.WriteString(fmt.Sprintf("%v %v %v %v\n", t.origin, t.destination, t.length, t.hops))
	}

	file, cErr := os.Create(targetFile)
	if cErr != nil {
		log.Fatal(cErr)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	writer.WriteString(sb.String())
	writer.Flush()
}

// Run benchmarks on the provided graph and targets
func benchmark(navigator p.Navigator[graph.NodeId, float64], targets []target) {
	var runtime time.Duration = 0
	var runtimeWithPathExtraction time.Duration = 0
	completed := 0

	pqPops := 0
	pqUpdates := 0
	edgeRelaxations := 0
	relaxationAttempts := 0

	invalidLengths := make([]int, 0)
	invalidResults := make([]int, 0)
	invalidHops := make([]int, 0)

	showResults := func() {
		if completed == 0 {
			return
		}
		fmt.Printf("Average runtime: %.3fms, %.3fms\n", float64(runtime.Nanoseconds())/float64(completed)/1000000, float64(runtimeWithPathExtraction.Nanoseconds())/float64(completed)/1000000)
		fmt.Printf("Average pq pops: %d\n", pqPops/completed)
		fmt.Printf("Average pq updates: %d\n", pqUpdates/completed)
		fmt.Printf("Average relaxations attempts: %d\n", relaxationAttempts/completed)
		fmt.Printf("Average edge relaxations: %d\n", edgeRelaxations/completed)

		fmt.Printf("%v/%v invalid Result (source/target).\n", len(invalidResults), completed)
		for i, testcase := range invalidResults {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid result\n", i, testcase, targets[testcase].origin, targets[testcase].destination)
		}
		fmt.Printf("%v/%v invalid path lengths.\n", len(invalidLengths), completed)
		for i, testcase := range invalidLengths {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid length\n", i, testcase, targets[testcase].origin, targets[testcase].destination)
		}
		fmt.Printf("%v/%v invalid hops number.\n", len(invalidHops), completed)
		for i, testcase := range invalidHops {
			fmt.Printf("%v: Case %v (%v -> %v) has invalid #hops\n", i, testcase, targets[testcase].origin, targets[testcase].destination)
		}
	}

	// catch interrupt to still show already calculated results
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		showResults()
		os.Exit(0)
	}()

	for i, t := range targets {
		start := time.Now()
		length, err := navigator.ComputeShortestPath(t.origin, t.destination)
		elapsed := time.Since(start)
		reachable := err == nil
		if err != nil && !errors.Is(err, p.ErrUnreachable) {
			log.Fatal(err)
		}

		pqPops += navigator.GetPqPops()
		pqUpdates += navigator.GetPqUpdates()
		edgeRelaxations += navigator.GetEdgeRelaxations()
		relaxationAttempts += navigator.GetRelaxationAttempts()

		path := navigator.GetPath(t.origin, t.destination)
		elapsedPath := time.Since(start)

		fmt.Printf("[%3v TIME-Navigate, TIME-Path, PQ Pops, PQ Updates, relaxed Edges, relax attempts] = %12s, %12s, %7d, %7d, %7d, %7d\n", i, elapsed, elapsedPath, navigator.GetPqPops(), navigator.GetPqUpdates(), navigator.GetEdgeRelaxations(), navigator.GetRelaxationAttempts())

		if reachable != (t.length >= 0) || (reachable && math.Abs(length-t.length) > 1e-9) {
			invalidLengths = append(invalidLengths, i)
		}
		if reachable && (len(path) == 0 || path[0] != t.origin || path[len(path)-1] != t.destination) {
			invalidResults = append(invalidResults, i)
		}
		if t.hops != len(path) {
			invalidHops = append(invalidHops, i)
		}

		runtime += elapsed
		runtimeWithPathExtraction += elapsedPath
		completed++
	}
	// normal termination, show results
	showResults()
}
