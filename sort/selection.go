package sort

// SelectionSort sorts s in place using the Precedes method of its elements.
// It does at most one swap per position and is not stable.
func SelectionSort[T Sortable[T]](s []T) {
	selectionSort(s, Method[T]())
}

// SelectionSortOrdered sorts s in place in ascending natural order.
func SelectionSortOrdered[T Ordered](s []T) {
	selectionSort(s, Less[T])
}

// SelectionSortFunc sorts s in place using precedes.
func SelectionSortFunc[T any](s []T, precedes Precedes[T]) {
	selectionSort(s, precedes)
}

func selectionSort[T any](s []T, precedes Precedes[T]) {
	if len(s) < 2 {
		return
	}
	for i := range s {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if precedes(s[j], s[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}
