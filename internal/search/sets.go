package search

import (
	"cmp"
	"slices"
)

// setOr is the sorted union of sets.
func setOr[T cmp.Ordered](sets ...[]T) (r []T) {
	l := 0
	for i := 0; i < len(sets); i++ {
		l += len(sets[i])
	}

	r = make([]T, 0, l)
	for i := 0; i < len(sets); i++ {
		r = append(r, sets[i]...)
	}

	slices.Sort(r)
	return slices.Compact(r)
}

// setAnd is the sorted intersection of two sets.
func setAnd[T cmp.Ordered](r1, r2 []T) (r []T) {
	r1 = setOr(r1)
	r2 = setOr(r2)
	r = make([]T, 0, min(len(r1), len(r2)))
	for _, v := range r1 {
		if _, ok := slices.BinarySearch(r2, v); ok {
			r = append(r, v)
		}
	}
	return
}
