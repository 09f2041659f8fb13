package graph

import "cmp"

// Arc is a directed edge, owned by its source vertex.
type Arc[V cmp.Ordered, W Weight] struct {
	To     V
	Weight W
}

func MakeArc[V cmp.Ordered, W Weight](to V, weight W) Arc[V, W] {
	return Arc[V, W]{To: to, Weight: weight}
}

func (a Arc[V, W]) Destination() V {
	return a.To
}

func (a Arc[V, W]) Cost() W {
	return a.Weight
}
