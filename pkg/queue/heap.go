package queue

import (
	"cmp"
	"fmt"
)

type Item[V cmp.Ordered, D cmp.Ordered] struct {
	ItemId   V   // vertex of this item
	Priority D   // tentative distance from origin to this vertex
	Index    int // index of the item in the heap
}

func NewQueueItem[V cmp.Ordered, D cmp.Ordered](itemId V, priority D) *Item[V, D] {
	return &Item[V, D]{ItemId: itemId, Priority: priority, Index: -1}
}

func (item *Item[V, D]) String() string {
	return fmt.Sprintf("%v: %v, %v\n", item.Index, item.ItemId, item.Priority)
}

// A Queue implements the heap.Interface and holds Items.
// Ties on the priority are broken by the item id, which keeps pop order
// reproducible.
type Queue[V cmp.Ordered, D cmp.Ordered] []*Item[V, D]

func (h Queue[V, D]) Len() int {
	return len(h)
}

func (h Queue[V, D]) Less(i, j int) bool {
	// MinHeap implementation
	if c := cmp.Compare(h[i].Priority, h[j].Priority); c != 0 {
		return c < 0
	}
	return h[i].ItemId < h[j].ItemId
}

func (h Queue[V, D]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].Index, h[j].Index = i, j
}

func (h *Queue[V, D]) Push(item any) {
	n := len(*h)
	pqItem := item.(*Item[V, D])
	pqItem.Index = n
	*h = append(*h, pqItem)
}

func (h *Queue[V, D]) Pop() any {
	old := *h
	n := len(old)
	pqItem := old[n-1]
	old[n-1] = nil
	pqItem.Index = -1 // for safety
	*h = old[0 : n-1]
	return pqItem
}
