package binsearch

import "cmp"

// NotFound is returned by BinarySearch when the target is absent.
const NotFound = -1

// BinarySearch returns an index of target in sorted, or NotFound.
func BinarySearch[T cmp.Ordered](sorted []T, target T) int {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		// lo + (hi-lo)/2 cannot overflow for any slice length.
		mid := lo + (hi-lo)/2
		switch c := cmp.Compare(sorted[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}
