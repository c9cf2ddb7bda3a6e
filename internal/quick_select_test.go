package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickSelect(t *testing.T) {
	testCases := []struct {
		name     string
		arr      []int64
		pivot    int
		expected int64
	}{
		{
			name:     "median of odd length",
			arr:      []int64{5, -2, 9, 0, 3},
			pivot:    2,
			expected: 3,
		},
		{
			name:     "upper middle of even length",
			arr:      []int64{4, 1, 3, 2},
			pivot:    2,
			expected: 3,
		},
		{
			name:     "minimum",
			arr:      []int64{7, -30, 12, 0},
			pivot:    0,
			expected: -30,
		},
		{
			name:     "maximum",
			arr:      []int64{7, -30, 12, 0},
			pivot:    3,
			expected: 12,
		},
		{
			name:     "single element",
			arr:      []int64{42},
			pivot:    0,
			expected: 42,
		},
		{
			name:     "duplicates",
			arr:      []int64{2, 2, 2, 1, 3},
			pivot:    2,
			expected: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			arrCopy := make([]int64, len(tc.arr))
			copy(arrCopy, tc.arr)

			result := QuickSelect(arrCopy, 0, len(arrCopy)-1, tc.pivot)

			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestQuickSelectPartialRange(t *testing.T) {
	arr := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	assert.Equal(t, 5, QuickSelect(arr, 2, 6, 4))
}
