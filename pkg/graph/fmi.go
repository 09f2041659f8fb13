package graph

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	geo "github.com/natevvv/osm-campus-routing/pkg/geometry"
)

// fmi parse states
const (
	PARSE_NODE_COUNT = iota
	PARSE_EDGE_COUNT = iota
	PARSE_NODES      = iota
	PARSE_EDGES      = iota
)

// FootwayGraph is the graph built from a campus map: OSM node ids as
// vertices, distances in miles as weights.
type FootwayGraph = WeightedGraph[NodeId, float64]

// WriteFmi writes g in the fmi text format. Every vertex needs an entry in coords.
func WriteFmi(w io.Writer, g Graph[NodeId, float64], coords map[NodeId]geo.Point) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%v\n", g.NodeCount())
	fmt.Fprintf(bw, "%v\n", g.ArcCount())

	bw.WriteString("#Nodes\n")
	// list all nodes structured as "id lat lon"
	vertices := g.Vertices()
	for _, v := range vertices {
		p, ok := coords[v]
		if !ok {
			return errors.Errorf("no coordinate for node %d", v)
		}
		fmt.Fprintf(bw, "%v %v %v\n", v, p.Lat(), p.Lon())
	}

	bw.WriteString("#Edges\n")
	// list all edges structured as "fromId targetId distance"
	for _, v := range vertices {
		for _, arc := range g.GetArcsFrom(v) {
			fmt.Fprintf(bw, "%v %v %v\n", v, arc.Destination(), arc.Cost())
		}
	}
	return bw.Flush()
}

func WriteFmiFile(filename string, g Graph[NodeId, float64], coords map[NodeId]geo.Point) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create fmi file")
	}
	if err := WriteFmi(file, g, coords); err != nil {
		file.Close()
		return errors.Wrapf(err, "write %s", filename)
	}
	return file.Close()
}

func FmiString(g Graph[NodeId, float64], coords map[NodeId]geo.Point) (string, error) {
	var sb strings.Builder
	if err := WriteFmi(&sb, g, coords); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ParseFmi reads a graph in the fmi text format. Arcs which reference
// unknown nodes or carry a negative weight are rejected.
func ParseFmi(r io.Reader) (*FootwayGraph, map[NodeId]geo.Point, error) {
	scanner := bufio.NewScanner(r)

	numNodes := 0
	numParsedNodes := 0

	g := NewWeightedGraph[NodeId, float64]()
	coords := make(map[NodeId]geo.Point)

	parseState := PARSE_NODE_COUNT
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if len(line) < 1 {
			// skip empty lines
			continue
		} else if line[0] == '#' {
			// skip comments
			continue
		}

		switch parseState {
		case PARSE_NODE_COUNT:
			val, err := strconv.Atoi(line)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "line %d: node count", lineNumber)
			}
			numNodes = val
			parseState = PARSE_EDGE_COUNT
		case PARSE_EDGE_COUNT:
			if _, err := strconv.Atoi(line); err != nil {
				return nil, nil, errors.Wrapf(err, "line %d: edge count", lineNumber)
			}
			parseState = PARSE_NODES
			if numNodes == 0 {
				parseState = PARSE_EDGES
			}
		case PARSE_NODES:
			var id NodeId
			var lat, lon float64
			if _, err := fmt.Sscanf(line, "%d %g %g", &id, &lat, &lon); err != nil {
				return nil, nil, errors.Wrapf(err, "line %d: node", lineNumber)
			}
			if !g.AddVertex(id) {
				return nil, nil, errors.Errorf("line %d: duplicate node %d", lineNumber, id)
			}
			coords[id] = geo.MakePoint(lat, lon)
			numParsedNodes++
			if numParsedNodes == numNodes {
				parseState = PARSE_EDGES
			}
		case PARSE_EDGES:
			var from, to NodeId
			var distance float64
			if _, err := fmt.Sscanf(line, "%d %d %g", &from, &to, &distance); err != nil {
				return nil, nil, errors.Wrapf(err, "line %d: edge", lineNumber)
			}
			if !g.AddEdge(from, to, distance) {
				return nil, nil, errors.Errorf("line %d: invalid edge %d -> %d (%v)", lineNumber, from, to, distance)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "read fmi")
	}

	if g.NodeCount() != numNodes {
		return nil, nil, errors.Errorf("parsed %d nodes, header announced %d", g.NodeCount(), numNodes)
	}

	return g, coords, nil
}

func NewWeightedGraphFromFmiString(fmi string) (*FootwayGraph, map[NodeId]geo.Point, error) {
	return ParseFmi(strings.NewReader(fmi))
}

func NewWeightedGraphFromFmiFile(filename string) (*FootwayGraph, map[NodeId]geo.Point, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open fmi file")
	}
	defer file.Close()
	return ParseFmi(file)
}
