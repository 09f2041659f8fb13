package queue

import (
	"cmp"
	"container/heap"
	"strings"
)

// MinHeap is a min priority queue without decrease-key. A vertex whose
// distance improves is pushed again; the consumer discards the stale entries
// when they are popped (lazy deletion).
type MinHeap[V cmp.Ordered, D cmp.Ordered] struct {
	Queue Queue[V, D]
}

func NewMinHeap[V cmp.Ordered, D cmp.Ordered](items ...*Item[V, D]) *MinHeap[V, D] {
	h := &MinHeap[V, D]{Queue: make(Queue[V, D], len(items))}
	for i, item := range items {
		h.Queue[i] = item
		item.Index = i
	}
	heap.Init(&h.Queue)
	return h
}

func (h *MinHeap[V, D]) Len() int                  { return h.Queue.Len() }
func (h *MinHeap[V, D]) Push(item *Item[V, D])     { heap.Push(&h.Queue, item) }
func (h *MinHeap[V, D]) PushItem(id V, priority D) { h.Push(NewQueueItem(id, priority)) }
func (h *MinHeap[V, D]) Pop() *Item[V, D]          { return heap.Pop(&h.Queue).(*Item[V, D]) }
func (h *MinHeap[V, D]) Peek() *Item[V, D]         { return h.Queue[0] }
func (h *MinHeap[V, D]) PeekAt(index int) *Item[V, D] {
	if index >= h.Len() {
		panic("index out of bounds")
	}
	return h.Queue[index]
}
func (h *MinHeap[V, D]) String() string {
	var sb strings.Builder
	for i := 0; i < h.Len(); i++ {
		sb.WriteString(h.PeekAt(i).String())
	}
	return sb.String()
}
