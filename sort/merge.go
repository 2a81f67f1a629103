package sort

// MergeSort sorts s in place using the Precedes method of its elements.
// When neither of two elements from different halves precedes the other,
// the one from the right half is placed first.
func MergeSort[T Sortable[T]](s []T) {
	mergeSortSlice(s, Method[T]())
}

// MergeSortOrdered sorts s in place in ascending natural order.
func MergeSortOrdered[T Ordered](s []T) {
	mergeSortSlice(s, Less[T])
}

// MergeSortFunc sorts s in place using precedes.
func MergeSortFunc[T any](s []T, precedes Precedes[T]) {
	mergeSortSlice(s, precedes)
}

func mergeSortSlice[T any](s []T, precedes Precedes[T]) {
	if len(s) < 2 {
		return
	}
	// A single scratch buffer is shared by all merge levels and dropped on return.
	temp := make([]T, len(s))
	mergeSort(s, temp, precedes)
}

func mergeSort[T any](s, temp []T, precedes Precedes[T]) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], temp[:mid], precedes)
	mergeSort(s[mid:], temp[mid:], precedes)
	merge(s, mid, temp[:len(s)], precedes)
}

// merge combines the sorted runs s[:mid] and s[mid:] through temp and
// copies the result back over s.
func merge[T any](s []T, mid int, temp []T, precedes Precedes[T]) {
	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		if precedes(s[i], s[j]) {
			temp[k] = s[i]
			i++
		} else {
			temp[k] = s[j]
			j++
		}
		k++
	}
	k += copy(temp[k:], s[i:mid])
	copy(temp[k:], s[j:])
	copy(s, temp)
}
