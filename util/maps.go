package util

import (
	"cmp"
	"slices"
)

// Numeric covers the built-in number types the map helpers can sum.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Pair is a key-value pair extracted from a map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Merge joins two or more maps without losing information: when the same key
// appears in several maps, the values are combined with the combine function
// instead of the later one overriding the earlier one.
func Merge[K comparable, V any](combine func(V, V) V, maps ...map[K]V) map[K]V {
	out := make(map[K]V)
	for _, m := range maps {
		for k, v := range m {
			if prev, ok := out[k]; ok {
				out[k] = combine(prev, v)
			} else {
				out[k] = v
			}
		}
	}
	return out
}

// MergeSum joins two or more numeric-valued maps, adding the values of
// repeated keys.
func MergeSum[K comparable, V Numeric](maps ...map[K]V) map[K]V {
	return Merge(func(a, b V) V { return a + b }, maps...)
}

// SortedPairs returns the entries of a map as a slice of pairs ordered by key.
// Go maps have no iteration order, so the sorted-dictionary result is a slice.
func SortedPairs[K cmp.Ordered, V any](m map[K]V) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(pairs, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return pairs
}

// SortedPairsFunc returns the entries of a map as a slice of pairs ordered by
// the given comparison function.
func SortedPairsFunc[K comparable, V any](m map[K]V, compare func(a, b Pair[K, V]) int) []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	slices.SortStableFunc(pairs, compare)
	return pairs
}
