// Package sort implements in-place quicksort, selection sort, insertion sort
// and merge sort over slices of any element type which can rank itself
// against another element of the same type.
package sort

import "golang.org/x/exp/constraints"

// Sortable is implemented by element types which carry their own ranking rule.
// Precedes returns true when the receiver should be placed before other.
// A type can have only one Precedes method, so only one ranking rule is ever
// bound to a concrete type.
type Sortable[T any] interface {
	Precedes(other T) bool
}

// Ordered are the types with a natural order, they are sorted by the
// *Ordered functions without implementing Sortable.
type Ordered interface {
	constraints.Ordered
}

// Precedes is a ranking predicate, it returns true when a should be placed before b.
type Precedes[T any] func(a, b T) bool

// Less is the default predicate for naturally ordered types.
func Less[T Ordered](a, b T) bool {
	return a < b
}

// Method returns the predicate bound to T by its Precedes method.
func Method[T Sortable[T]]() Precedes[T] {
	return func(a, b T) bool {
		return a.Precedes(b)
	}
}

// Reverse swaps the arguments of p.
func Reverse[T any](p Precedes[T]) Precedes[T] {
	return func(a, b T) bool {
		return p(b, a)
	}
}

// ByKey ranks elements by the natural order of a key extracted from each of them.
func ByKey[T any, K Ordered](key func(T) K) Precedes[T] {
	return func(a, b T) bool {
		return key(a) < key(b)
	}
}
