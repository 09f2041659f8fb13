// Package console runs the interactive building-to-building navigator on a
// line based input stream.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/natevvv/osm-campus-routing/pkg/campus"
	"github.com/natevvv/osm-campus-routing/pkg/geometry"
	"github.com/natevvv/osm-campus-routing/pkg/gpx"
	"github.com/natevvv/osm-campus-routing/pkg/graph"
	"github.com/natevvv/osm-campus-routing/pkg/routing"
)

const (
	StartPrompt       = "Enter start (partial name or abbreviation), or #> "
	DestinationPrompt = "Enter destination (partial name or abbreviation)> "
	MapPrompt         = "Enter map filename> "
	quit              = "#"
)

type Session struct {
	router  *routing.Router
	in      *bufio.Scanner
	out     io.Writer
	gpxFile string
	logger  *slog.Logger
}

// NewSession reads queries from in and writes answers to out. If gpxFile is
// set every reachable route is also written there as GPX, replacing the
// previous one.
func NewSession(router *routing.Router, in *bufio.Scanner, out io.Writer, gpxFile string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		router:  router,
		in:      in,
		out:     out,
		gpxFile: gpxFile,
		logger:  logger,
	}
}

// PromptMapFile asks for the map file name. An empty answer (or end of input)
// selects defaultFile.
func PromptMapFile(in *bufio.Scanner, out io.Writer, defaultFile string) string {
	fmt.Fprint(out, MapPrompt)
	if in.Scan() {
		if name := strings.TrimSpace(in.Text()); name != "" {
			return name
		}
	}
	return defaultFile
}

func PrintStats(out io.Writer, stats routing.Stats) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "# of nodes: %d\n", stats.Nodes)
	fmt.Fprintf(out, "# of footways: %d\n", stats.Footways)
	fmt.Fprintf(out, "# of buildings: %d\n", stats.Buildings)
	fmt.Fprintf(out, "# of vertices: %d\n", stats.Vertices)
	fmt.Fprintf(out, "# of edges: %d\n", stats.Edges)
	fmt.Fprintln(out)
}

// Run answers start/destination pairs until "#" or the end of input.
func (s *Session) Run(ctx context.Context) error {
	for {
		start, ok := s.prompt(StartPrompt)
		if !ok || start == quit {
			break
		}
		destination, ok := s.prompt(DestinationPrompt)
		if !ok {
			break
		}

		if err := s.navigate(ctx, start, destination); err != nil {
			return err
		}
		fmt.Fprintln(s.out)
	}
	fmt.Fprintln(s.out, "** Done **")
	return s.in.Err()
}

func (s *Session) prompt(text string) (string, bool) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) navigate(ctx context.Context, startQuery, destinationQuery string) error {
	route, err := s.router.Navigate(ctx, startQuery, destinationQuery)
	switch {
	case errors.Is(err, routing.ErrStartNotFound):
		fmt.Fprintln(s.out, "Start building not found")
		return nil
	case errors.Is(err, routing.ErrDestinationNotFound):
		fmt.Fprintln(s.out, "Destination building not found")
		return nil
	case err != nil:
		return err
	}

	s.printBuilding("Starting point:", *route.Start)
	s.printBuilding("Destination point:", *route.Destination)
	fmt.Fprintln(s.out)
	s.printNode("Nearest start node:", route.StartNode)
	s.printNode("Nearest destination node:", route.DestinationNode)
	fmt.Fprintln(s.out)

	fmt.Fprintln(s.out, "Navigating with Dijkstra...")
	if !route.Reachable {
		fmt.Fprintln(s.out, "Sorry, destination unreachable")
		return nil
	}
	fmt.Fprintf(s.out, "Distance to dest: %s miles\n", formatMiles(route.Distance))
	fmt.Fprintf(s.out, "Path: %s\n", FormatPath(route.Path))

	if s.gpxFile != "" {
		if err := gpx.WriteFile(s.gpxFile, gpx.FromRoute(&route)); err != nil {
			return err
		}
		s.logger.Info("route exported", slog.String("file", s.gpxFile))
	}
	return nil
}

func (s *Session) printBuilding(title string, b campus.Building) {
	fmt.Fprintln(s.out, title)
	fmt.Fprintf(s.out, " %s\n", b.FullName)
	fmt.Fprintf(s.out, " %s\n", formatPoint(b.Coordinate.Point))
}

func (s *Session) printNode(title string, c geometry.Coordinate) {
	fmt.Fprintln(s.out, title)
	fmt.Fprintf(s.out, " %d\n", c.ID)
	fmt.Fprintf(s.out, " %s\n", formatPoint(c.Point))
}

func formatMiles(d float64) string {
	return strconv.FormatFloat(d, 'g', 6, 64)
}

func formatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%s, %s)", strconv.FormatFloat(p.Lat(), 'f', -1, 64), strconv.FormatFloat(p.Lon(), 'f', -1, 64))
}

// FormatPath joins node ids with "->".
func FormatPath(nodes []graph.NodeId) string {
	parts := make([]string, len(nodes))
	for i, id := range nodes {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, "->")
}
