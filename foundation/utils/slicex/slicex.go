// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice operations used by the formula packages. Every
//              function returns a new slice and never modifies its input, so
//              formulas can fold over caller data without copying it first.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-19 v0.2.0: Stable SortBy, Windows, reduced to the operations in use

package slicex

import (
	"cmp"
	"slices"
)

// Number is the set of numeric element types accepted by Sum
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ===============================
// Core Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// MapWithIndex transforms each element with its index using the provided function
func MapWithIndex[T, R any](slice []T, mapper func(int, T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(i, item)
	}
	return result
}

// Reduce reduces the slice to a single value using the provided function
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	if reducer == nil {
		return initial
	}

	result := initial
	for _, item := range slice {
		result = reducer(result, item)
	}
	return result
}

// Windows returns the len(slice)-size+1 contiguous sub-slices of length size, in order.
// The sub-slices share memory with the input and must not be modified.
func Windows[T any](slice []T, size int) [][]T {
	if size < 1 || size > len(slice) {
		return nil
	}

	result := make([][]T, 0, len(slice)-size+1)
	for i := 0; i+size <= len(slice); i++ {
		result = append(result, slice[i:i+size:i+size])
	}
	return result
}

// ===============================
// Predicates and Aggregates
// ===============================

// Every reports whether all elements satisfy the predicate. An empty slice
// satisfies every predicate.
func Every[T any](slice []T, predicate func(T) bool) bool {
	for _, item := range slice {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Some reports whether at least one element satisfies the predicate
func Some[T any](slice []T, predicate func(T) bool) bool {
	for _, item := range slice {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Count returns the number of elements that satisfy the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	count := 0
	for _, item := range slice {
		if predicate(item) {
			count++
		}
	}
	return count
}

// Min returns the minimum element (requires ordered type)
func Min[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	min := slice[0]
	for _, item := range slice[1:] {
		if item < min {
			min = item
		}
	}
	return min, true
}

// Max returns the maximum element (requires ordered type)
func Max[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}

	max := slice[0]
	for _, item := range slice[1:] {
		if item > max {
			max = item
		}
	}
	return max, true
}

// Sum returns the sum of all elements
func Sum[T Number](slice []T) T {
	var sum T
	for _, item := range slice {
		sum += item
	}
	return sum
}

// ===============================
// Copies, Pairs and Sorting
// ===============================

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Pair represents a pair of values with type safety
type Pair[T, U any] struct {
	First  T
	Second U
}

// Zip combines two slices into a slice of type-safe pairs, truncated to the
// shorter input
func Zip[T, U any](slice1 []T, slice2 []U) []Pair[T, U] {
	if slice1 == nil || slice2 == nil {
		return nil
	}

	minLen := min(len(slice1), len(slice2))
	result := make([]Pair[T, U], minLen)
	for i := 0; i < minLen; i++ {
		result[i] = Pair[T, U]{First: slice1[i], Second: slice2[i]}
	}
	return result
}

// Sort returns a sorted copy of the slice (requires ordered type)
func Sort[T cmp.Ordered](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := Clone(slice)
	slices.Sort(result)
	return result
}

// SortBy returns a stably sorted copy using a comparison function. Elements
// that compare equal keep their input order.
func SortBy[T any](slice []T, less func(T, T) bool) []T {
	if slice == nil || less == nil {
		return nil
	}

	result := Clone(slice)
	slices.SortStableFunc(result, func(a, b T) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	})
	return result
}

// IsSorted checks if the slice is sorted (requires ordered type)
func IsSorted[T cmp.Ordered](slice []T) bool {
	return slices.IsSorted(slice)
}

// Equal checks if two slices hold the same elements in the same order
func Equal[T comparable](slice1, slice2 []T) bool {
	return slices.Equal(slice1, slice2)
}
