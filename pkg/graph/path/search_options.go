package path

import "cmp"

// SearchOptions configures a single Dijkstra search. The zero value searches
// the whole component of the origin.
type SearchOptions[V cmp.Ordered] struct {
	destination    V
	hasDestination bool
	maxSettled     int // 0: unlimited
}

// Create new (empty) SearchOptions
func MakeSearchOptions[V cmp.Ordered]() SearchOptions[V] {
	return SearchOptions[V]{}
}

// Stop the search as soon as the destination is settled.
func (so SearchOptions[V]) SetDestination(destination V) SearchOptions[V] {
	so.destination = destination
	so.hasDestination = true
	return so
}

// Forget the destination and search the whole component again.
func (so SearchOptions[V]) ResetDestination() SearchOptions[V] {
	var zero V
	so.destination = zero
	so.hasDestination = false
	return so
}

func (so SearchOptions[V]) Destination() (V, bool) {
	return so.destination, so.hasDestination
}

// Stop the search after n vertices are settled. n <= 0 disables the limit.
func (so SearchOptions[V]) SetMaxSettled(n int) SearchOptions[V] {
	if n < 0 {
		n = 0
	}
	so.maxSettled = n
	return so
}

func (so SearchOptions[V]) MaxSettled() int {
	return so.maxSettled
}
