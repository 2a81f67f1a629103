package sort

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/glog"
)

var (
	// ErrUnknownAlgorithm error returns when an algorithm name or value is not recognized
	ErrUnknownAlgorithm = errors.New("unknown sort algorithm")
)

// Algorithm identifies one of the sorting algorithms of the package.
type Algorithm uint8

const (
	Quick Algorithm = iota + 1
	Selection
	Insertion
	Merge
)

var algorithmNames = map[Algorithm]string{
	Quick:     "quick",
	Selection: "selection",
	Insertion: "insertion",
	Merge:     "merge",
}

func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Stable reports whether the algorithm keeps the input order of elements
// which do not precede each other. Merge places the right element first on
// such ties and is reported as not stable.
func (a Algorithm) Stable() bool {
	return a == Insertion
}

// ParseAlgorithm returns the Algorithm with the given name, matching is case
// insensitive and accepts an optional "sort" suffix, as in "quicksort".
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "sort")
	n = strings.TrimRight(n, " _-")
	if n == "insert" {
		n = "insertion"
	}
	for a, an := range algorithmNames {
		if an == n {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// SortFunc sorts s in place with the algorithm a using precedes.
func SortFunc[T any](a Algorithm, s []T, precedes Precedes[T]) error {
	glog.V(6).Infof("Sorting %d elements with %s sort", len(s), a)
	switch a {
	case Quick:
		quickSort(s, precedes)
	case Selection:
		selectionSort(s, precedes)
	case Insertion:
		insertSort(s, precedes)
	case Merge:
		mergeSortSlice(s, precedes)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}

	return nil
}

// Sort sorts s in place with the algorithm a using the Precedes method of its elements.
func Sort[T Sortable[T]](a Algorithm, s []T) error {
	return SortFunc(a, s, Method[T]())
}

// SortOrdered sorts s in place with the algorithm a using Less.
func SortOrdered[T Ordered](a Algorithm, s []T) error {
	return SortFunc(a, s, Less[T])
}
