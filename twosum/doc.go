// Package twosum finds index pairs of a slice whose values add up to a target.
//
// What
//
//   - TwoSum returns the first pair [i, j], i < j, with nums[i]+nums[j] == target.
//   - Pairs returns every such pair.
//
// Ordering
//
//	Both functions scan index pairs in ascending (i, j) order: i from 0, and for
//	each i, j from i+1. "First" therefore means the smallest i, then the
//	smallest j. On [3, 3, 3] with target 6, TwoSum returns [0, 1].
//
// Edge cases
//
//   - Empty or single-element input has no pair: the result is an empty, non-nil slice.
//   - The input slice is never modified.
//
// Complexity
//
//   - Time:  O(n²) comparisons in the worst case.
//   - Space: O(1) for TwoSum, O(k) for Pairs where k is the number of matches.
package twosum
