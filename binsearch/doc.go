// Package binsearch locates a value in an ascending slice by halving the
// search window.
//
// BinarySearch keeps two pointers lo and hi around the part of the slice that
// may still hold the target, compares the midpoint, and drops the half that
// cannot contain it. It runs in O(log n) time and O(1) space.
//
// The slice must be sorted ascending; on unsorted input the result is
// unspecified but the call still terminates without panicking. When the
// target occurs more than once, any one of its indices may be returned.
// An absent target yields -1.
package binsearch
