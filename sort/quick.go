package sort

// QuickSort sorts s in place using the Precedes method of its elements.
// It is not stable.
func QuickSort[T Sortable[T]](s []T) {
	quickSort(s, Method[T]())
}

// QuickSortOrdered sorts s in place in ascending natural order.
func QuickSortOrdered[T Ordered](s []T) {
	quickSort(s, Less[T])
}

// QuickSortFunc sorts s in place using precedes.
func QuickSortFunc[T any](s []T, precedes Precedes[T]) {
	quickSort(s, precedes)
}

// quickSort recurses into the shorter side of the pivot and loops over the
// longer one, the stack depth stays within O(log n) even on sorted input.
func quickSort[T any](s []T, precedes Precedes[T]) {
	for len(s) > 1 {
		p := partition(s, precedes)
		left, right := s[:p], s[p+1:]
		if len(left) < len(right) {
			quickSort(left, precedes)
			s = right
		} else {
			quickSort(right, precedes)
			s = left
		}
	}
}

// partition uses the last element as the pivot, moves every element which
// precedes it to the front and returns the final position of the pivot.
func partition[T any](s []T, precedes Precedes[T]) int {
	last := len(s) - 1
	low := 0
	for i := 0; i < last; i++ {
		if precedes(s[i], s[last]) {
			s[low], s[i] = s[i], s[low]
			low++
		}
	}
	s[low], s[last] = s[last], s[low]

	return low
}
