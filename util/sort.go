package util

import (
	"cmp"
	"slices"
)

// KeyCompare builds a comparison function from a key extractor.
func KeyCompare[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reverse inverts the order defined by a comparison function.
func Reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// MultiSorted sorts a copy of the slice using all the comparison functions
// given: each one is applied only to break ties left by the previous ones.
// Elements still tied after the last comparator keep their original order.
func MultiSorted[T any](s []T, compares ...func(a, b T) int) []T {
	out := slices.Clone(s)
	slices.SortStableFunc(out, func(a, b T) int {
		for _, compare := range compares {
			if r := compare(a, b); r != 0 {
				return r
			}
		}
		return 0
	})
	return out
}

// Ranked sorts a copy of the slice and groups equal elements together,
// returning a list of tie groups in rank order. Elements inside a group keep
// their original relative order.
func Ranked[T any](s []T, compare func(a, b T) int) [][]T {
	if len(s) == 0 {
		return nil
	}
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, compare)

	groups := [][]T{{sorted[0]}}
	for _, item := range sorted[1:] {
		last := groups[len(groups)-1]
		if compare(item, last[0]) == 0 {
			groups[len(groups)-1] = append(last, item)
		} else {
			groups = append(groups, []T{item})
		}
	}
	return groups
}

// RankedByKey ranks the slice by an ordered key. With reverse set, higher
// keys rank first.
func RankedByKey[T any, K cmp.Ordered](s []T, key func(T) K, reverse bool) [][]T {
	compare := KeyCompare(key)
	if reverse {
		compare = Reverse(compare)
	}
	return Ranked(s, compare)
}
