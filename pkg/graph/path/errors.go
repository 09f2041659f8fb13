package path

import "errors"

var (
	// ErrVertexNotFound is returned when the origin of a search is not in the graph.
	ErrVertexNotFound = errors.New("vertex not found in graph")
	// ErrUnreachable reports that no path exists. It is a regular outcome of a query.
	ErrUnreachable = errors.New("destination unreachable")
	// ErrSearchIncomplete reports that the search stopped before the destination was settled.
	ErrSearchIncomplete = errors.New("search stopped before destination was settled")
	// ErrPredecessorCycle reports a predecessor chain which never reaches the origin.
	ErrPredecessorCycle = errors.New("cycle in predecessor chain")
	// ErrBrokenChain reports a predecessor chain which ends before the origin.
	ErrBrokenChain = errors.New("predecessor chain does not reach origin")
)
