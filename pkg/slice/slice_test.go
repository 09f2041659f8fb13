package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseInPlace(t *testing.T) {
	s := []int{1, 2, 3, 4}
	ReverseInPlace(s)
	assert.Equal(t, []int{4, 3, 2, 1}, s)

	odd := []string{"a", "b", "c"}
	ReverseInPlace(odd)
	assert.Equal(t, []string{"c", "b", "a"}, odd)

	ReverseInPlace([]int(nil))
}

func TestContainsAndIntersects(t *testing.T) {
	assert.True(t, Contains([]int{1, 2}, 2))
	assert.False(t, Contains([]int{1, 2}, 3))
	assert.True(t, Intersects([]string{"science", "hall"}, []string{"hall"}))
	assert.False(t, Intersects([]string{"science"}, nil))
}
