package twosum

// TwoSum returns the indices [i, j] of the first pair with
// nums[i]+nums[j] == target, or an empty slice if there is none.
func TwoSum(nums []int, target int) []int {
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			if nums[i]+nums[j] == target {
				return []int{i, j}
			}
		}
	}

	return []int{}
}

// Pairs returns every index pair adding up to target, in the scan order of TwoSum.
func Pairs(nums []int, target int) [][2]int {
	out := make([][2]int, 0)
	for i := 0; i < len(nums); i++ {
		for j := i + 1; j < len(nums); j++ {
			if nums[i]+nums[j] == target {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}
