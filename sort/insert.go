package sort

// InsertSort sorts s in place using the Precedes method of its elements.
//
// An element is moved towards the front while its left neighbour precedes it,
// so the result runs against the predicate: Less produces descending order and
// a "greater than" predicate produces ascending order. Elements which do not
// precede each other are never swapped, which makes the sort stable.
func InsertSort[T Sortable[T]](s []T) {
	insertSort(s, Method[T]())
}

// InsertSortOrdered sorts s in place with Less, the result is in descending
// natural order.
func InsertSortOrdered[T Ordered](s []T) {
	insertSort(s, Less[T])
}

// InsertSortFunc sorts s in place using precedes, see InsertSort for the direction.
func InsertSortFunc[T any](s []T, precedes Precedes[T]) {
	insertSort(s, precedes)
}

func insertSort[T any](s []T, precedes Precedes[T]) {
	if len(s) < 2 {
		return
	}
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && precedes(s[j-1], s[j]); j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
