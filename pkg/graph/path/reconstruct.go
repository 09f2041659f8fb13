package path

import (
	"cmp"
	"fmt"

	"github.com/natevvv/osm-campus-routing/pkg/slice"
)

// Reconstruct walks the predecessor links from destination back to origin and
// returns the path ordered origin -> destination, both inclusive.
//
// A destination without predecessor (other than the origin itself) is
// unreachable. A chain which does not reach the origin within len(predecessors)
// steps contains a cycle, which only happens with tables that were not
// produced by a single search.
func Reconstruct[V cmp.Ordered](predecessors map[V]V, origin, destination V) ([]V, error) {
	if destination == origin {
		return []V{origin}, nil
	}
	if _, ok := predecessors[destination]; !ok {
		return nil, ErrUnreachable
	}

	path := []V{destination}
	for current := destination; current != origin; {
		predecessor, ok := predecessors[current]
		if !ok {
			return nil, fmt.Errorf("%w: chain from %v ends at %v", ErrBrokenChain, destination, current)
		}
		if len(path) > len(predecessors) {
			return nil, fmt.Errorf("%w: starting at %v", ErrPredecessorCycle, destination)
		}
		path = append(path, predecessor)
		current = predecessor
	}

	slice.ReverseInPlace(path)
	return path, nil
}
