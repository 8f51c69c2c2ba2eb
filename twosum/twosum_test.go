package twosum_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/twosum"
)

func TestTwoSum_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		nums   []int
		target int
		want   []int
	}{
		{"classic", []int{2, 7, 11, 15}, 9, []int{0, 1}},
		{"middle", []int{3, 2, 4}, 6, []int{1, 2}},
		{"same value twice", []int{3, 3}, 6, []int{0, 1}},
		{"negatives", []int{-3, 4, 3, 90}, 0, []int{0, 2}},
		{"first i wins", []int{1, 5, 4, 2}, 6, []int{0, 1}},
		{"no pair", []int{1, 2, 3}, 100, []int{}},
		{"empty", nil, 0, []int{}},
		{"single", []int{5}, 10, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := twosum.TwoSum(tc.nums, tc.target)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestTwoSum_TieBreak checks the ascending (i, j) scan order on repeated values.
func TestTwoSum_TieBreak(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0, 1}, twosum.TwoSum([]int{3, 3, 3}, 6))
	// (0,3) comes before (1,2) because i is smaller.
	assert.Equal(t, []int{0, 3}, twosum.TwoSum([]int{1, 2, 3, 4}, 5))
}

// TestTwoSum_DoesNotMutate ensures the input is left untouched.
func TestTwoSum_DoesNotMutate(t *testing.T) {
	t.Parallel()

	nums := []int{4, 1, 3, 2}
	before := append([]int(nil), nums...)
	_ = twosum.TwoSum(nums, 5)
	_ = twosum.Pairs(nums, 5)
	assert.Equal(t, before, nums)
}

// TestTwoSum_Property checks the returned pair on random inputs.
func TestTwoSum_Property(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := r.Intn(12)
		nums := make([]int, n)
		for k := range nums {
			nums[k] = r.Intn(21) - 10
		}
		target := r.Intn(21) - 10

		got := twosum.TwoSum(nums, target)
		all := twosum.Pairs(nums, target)
		if len(all) == 0 {
			assert.Empty(t, got)
			continue
		}
		require.Len(t, got, 2)
		i, j := got[0], got[1]
		assert.Less(t, i, j)
		assert.Equal(t, target, nums[i]+nums[j])
		assert.Equal(t, all[0], [2]int{i, j}, "TwoSum must return the first of Pairs")
	}
}

func TestPairs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [][2]int{{0, 3}, {1, 2}}, twosum.Pairs([]int{1, 2, 3, 4}, 5))
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, twosum.Pairs([]int{3, 3, 3}, 6))
	assert.Empty(t, twosum.Pairs([]int{1}, 2))
}
