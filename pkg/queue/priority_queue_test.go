package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeapOrder(t *testing.T) {
	h := NewMinHeap(NewQueueItem[int64](5, 3.0), NewQueueItem[int64](1, 7.5))
	h.PushItem(2, 0.5)
	h.PushItem(9, 3.0)
	h.PushItem(4, 3.0)

	var order []int64
	for h.Len() > 0 {
		order = append(order, h.Pop().ItemId)
	}
	// equal priorities come out by ascending id
	assert.Equal(t, []int64{2, 4, 5, 9, 1}, order)
}

func TestMinHeapDuplicates(t *testing.T) {
	h := NewMinHeap[int64, float64]()
	h.PushItem(3, 10)
	h.PushItem(3, 4)

	require.Equal(t, 2, h.Len())
	first := h.Pop()
	assert.Equal(t, int64(3), first.ItemId)
	assert.Equal(t, 4.0, first.Priority)
	assert.Equal(t, -1, first.Index)
	assert.Equal(t, 10.0, h.Peek().Priority)
}

func TestPeekAtOutOfBounds(t *testing.T) {
	h := NewMinHeap[int64, float64]()
	assert.Panics(t, func() { h.PeekAt(0) })
}
