package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampNumber(t *testing.T) {
	assert.Equal(t, 1, ClampNumber(-5))
	assert.Equal(t, 1, ClampNumber(0))
	assert.Equal(t, 1, ClampNumber(1))
	assert.Equal(t, 999, ClampNumber(999))
}

func TestClampSize(t *testing.T) {
	cases := []struct{ in, want int }{
		{1, 6}, {6, 6}, {7, 7}, {30, 30}, {100, 30},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampSize(tc.in, 6, 30), "size %d", tc.in)
	}
}

func TestNewRequest_ZeroIndexed(t *testing.T) {
	req := NewRequest(3, 12)
	assert.Equal(t, 2, req.Number)
	assert.Equal(t, 24, req.Offset())
	assert.Equal(t, 12, req.Limit())
}

func TestOffset_SaturatesOnHugePage(t *testing.T) {
	req := NewRequest(math.MaxInt, 12)
	assert.Equal(t, math.MaxInt, req.Offset())

	assert.Empty(t, Slice([]int{1, 2, 3}, req))
	assert.Equal(t, 0, NewRequest(1, 30).Offset())
}

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2}, NewRequest(2, 2), 5)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 2, p.Size)
	assert.Equal(t, 5, p.TotalElements)
	assert.Equal(t, 3, p.TotalPages)

	empty := NewPage[int](nil, NewRequest(1, 6), 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestMap(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, NewRequest(1, 6), 3)
	doubled := Map(p, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled.Items)
	assert.Equal(t, p.TotalElements, doubled.TotalElements)
}

func TestSlice(t *testing.T) {
	all := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2}, Slice(all, NewRequest(1, 2)))
	assert.Equal(t, []int{5}, Slice(all, NewRequest(3, 2)))
	assert.Empty(t, Slice(all, NewRequest(4, 2)))
}
