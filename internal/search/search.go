// Package search provides a generic binary search over an ascending slice.
//
// A BinarySearch is built once over data that is already sorted and can then
// answer any number of lookups. Construction neither copies, sorts, nor
// validates the data: results are undefined when the slice is not in
// ascending order or is modified after construction.
//
// Usage Example:
//
//	s := search.New([]int{1, 3, 4, 6, 8, 9, 11})
//	i := s.IndexOf(6)
//	// i == 3
//
// Performance:
//
//   - Construction: O(1)
//   - Lookup:       O(log n) comparisons
package search

import (
	"cmp"
	"errors"
	"fmt"
)

// NotFound is returned by IndexOf when the target is absent.
const NotFound = -1

// ErrNotFound indicates the target does not occur in the sequence.
var ErrNotFound = errors.New("search: value not found")

// BinarySearch looks up values in an ascending slice.
// It holds no mutable state and is safe for concurrent lookups.
type BinarySearch[T any] struct {
	sorted  []T
	compare func(a, b T) int
}

// New creates a BinarySearch over sorted using the natural ordering of T.
func New[T cmp.Ordered](sorted []T) *BinarySearch[T] {
	return NewFunc(sorted, cmp.Compare[T])
}

// NewFunc creates a BinarySearch over sorted using compare, which must return
// a negative number when a < b, zero when a == b and a positive number when a > b.
func NewFunc[T any](sorted []T, compare func(a, b T) int) *BinarySearch[T] {
	return &BinarySearch[T]{sorted: sorted, compare: compare}
}

// Len returns the number of elements in the backing slice.
func (s *BinarySearch[T]) Len() int {
	return len(s.sorted)
}

// IndexOf returns the zero-based index of an element equal to target, or
// NotFound. When the slice holds duplicates any matching index may be returned.
//
// Algorithm Outline:
//  1. low = 0, high = n-1.
//  2. While low <= high:
//     mid = low + (high-low)/2
//     target == sorted[mid] → return mid
//     target <  sorted[mid] → high = mid-1
//     target >  sorted[mid] → low = mid+1
//  3. Bounds crossed → NotFound.
func (s *BinarySearch[T]) IndexOf(target T) int {
	low, high := 0, len(s.sorted)-1

	for low <= high {
		mid := low + (high-low)/2 // avoids overflow of low+high

		switch c := s.compare(target, s.sorted[mid]); {
		case c == 0:
			return mid
		case c < 0:
			high = mid - 1
		default:
			low = mid + 1
		}
	}

	return NotFound
}

// Find is IndexOf with an error result: it returns ErrNotFound, wrapped with
// the target, when no element equals target.
func (s *BinarySearch[T]) Find(target T) (int, error) {
	idx := s.IndexOf(target)
	if idx == NotFound {
		return NotFound, fmt.Errorf("%w: %v", ErrNotFound, target)
	}
	return idx, nil
}
