// Package katas is a collection of small, independent coding exercises, each
// in its own package with tests and runnable examples.
//
//	kata/        shared convention: ErrInvalidInput, ErrNotImplemented, Exercise, Catalog
//	twosum/      first index pair adding up to a target
//	palindrome/  alphanumeric, case-insensitive palindrome check
//	binsearch/   binary search on an ascending slice
//	dijkstra/    single-source shortest distances, non-negative weights
//	reverse/     in-place two-pointer reversal
//	charcount/   letter frequencies, a–z only
//	pets/        validated pet records and an ordered registry
//
// No exercise package prints, logs or keeps global state. Sample invocations
// live in each package's Example functions and in the katas command:
//
//	go run ./cmd/katas run
package katas
