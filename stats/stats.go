// Package stats provides a counted-items list: an ordered collection of
// distinct values, each carrying an occurrence count and its normalized
// weight over the total. It is meant for lightweight frequency bookkeeping,
// ranking and handoff into weighted random selection.
package stats

import (
	"slices"

	"github.com/angmorpri/morelib/errors"
	"github.com/angmorpri/morelib/randx"
	"github.com/angmorpri/morelib/util"
)

// Entry is a value together with its count and normalized weight. Weight is
// Count divided by the list total and is kept up to date by the list after
// every mutation. When the total is zero all weights are zero.
type Entry[T comparable] struct {
	Value  T
	Count  float64
	Weight float64
}

// List tracks counts for a set of distinct values in insertion order.
// The zero value is not usable, call New.
type List[T comparable] struct {
	entries []Entry[T]
	index   map[T]int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{index: make(map[T]int)}
}

// FromValues builds a list by counting occurrences in values. Each value
// appears once, in first-seen order, with its number of occurrences.
func FromValues[T comparable](values []T) *List[T] {
	l := New[T]()
	l.Update(values...)
	return l
}

// FromCounts builds a list from explicit counts. Negative counts clamp to
// zero. Iteration order of the map is not deterministic, so entries are
// sorted only when the caller sorts them.
func FromCounts[T comparable](counts map[T]float64) *List[T] {
	l := New[T]()
	for value, count := range counts {
		l.Set(value, count)
	}
	return l
}

// Update records one more occurrence of each given value, inserting values
// not yet tracked.
func (l *List[T]) Update(values ...T) {
	for _, v := range values {
		l.add(v, 1)
	}
	l.reweight()
}

// Add changes the count of value by delta, inserting the value if needed.
// A resulting negative count clamps to zero.
func (l *List[T]) Add(value T, delta float64) {
	l.add(value, delta)
	l.reweight()
}

// Subtract is Add with a negated delta.
func (l *List[T]) Subtract(value T, delta float64) {
	l.add(value, -delta)
	l.reweight()
}

// Set replaces the count of value, inserting it if needed. Negative counts
// clamp to zero.
func (l *List[T]) Set(value T, count float64) {
	if count < 0 {
		count = 0
	}
	if i, ok := l.index[value]; ok {
		l.entries[i].Count = count
	} else {
		l.index[value] = len(l.entries)
		l.entries = append(l.entries, Entry[T]{Value: value, Count: count})
	}
	l.reweight()
}

// Remove drops value from the list. It returns NOT_FOUND when the value is
// not tracked.
func (l *List[T]) Remove(value T) error {
	i, ok := l.index[value]
	if !ok {
		return errors.NotFound("value", value)
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	delete(l.index, value)
	for j := i; j < len(l.entries); j++ {
		l.index[l.entries[j].Value] = j
	}
	l.reweight()
	return nil
}

// Reset sets every count to zero, keeping the tracked values.
func (l *List[T]) Reset() {
	for i := range l.entries {
		l.entries[i].Count = 0
	}
	l.reweight()
}

// Len returns the number of distinct values tracked.
func (l *List[T]) Len() int { return len(l.entries) }

// Total returns the sum of all counts.
func (l *List[T]) Total() float64 {
	var total float64
	for _, e := range l.entries {
		total += e.Count
	}
	return total
}

// Get returns the count of value and whether it is tracked.
func (l *List[T]) Get(value T) (float64, bool) {
	i, ok := l.index[value]
	if !ok {
		return 0, false
	}
	return l.entries[i].Count, true
}

// Entries returns a copy of the entries in insertion order.
func (l *List[T]) Entries() []Entry[T] {
	return slices.Clone(l.entries)
}

// Values returns the tracked values in insertion order.
func (l *List[T]) Values() []T {
	return util.Map(l.entries, func(e Entry[T]) T { return e.Value })
}

// Counts returns the counts in insertion order.
func (l *List[T]) Counts() []float64 {
	return util.Map(l.entries, func(e Entry[T]) float64 { return e.Count })
}

// Weights returns the normalized weights in insertion order.
func (l *List[T]) Weights() []float64 {
	return util.Map(l.entries, func(e Entry[T]) float64 { return e.Weight })
}

// Elements expands the list back into a flat slice with each value repeated
// by the integer part of its count.
func (l *List[T]) Elements() []T {
	var out []T
	for _, e := range l.entries {
		for range int(e.Count) {
			out = append(out, e.Value)
		}
	}
	return out
}

// FilterFunc returns the entries for which keep reports true, in insertion
// order.
func (l *List[T]) FilterFunc(keep func(Entry[T]) bool) []Entry[T] {
	return util.Filter(l.entries, keep)
}

// Rank groups entries by key into tie groups, best group first. With reverse
// unset, higher keys rank first, which is the usual reading for counts.
func (l *List[T]) Rank(key func(Entry[T]) float64, reverse bool) [][]Entry[T] {
	return util.RankedByKey(l.entries, key, !reverse)
}

// Top returns the n entries with the highest counts. Ties are broken by
// insertion order. When n exceeds Len all entries are returned.
func (l *List[T]) Top(n int) []Entry[T] {
	sorted := util.MultiSorted(l.entries,
		util.Reverse(util.KeyCompare(func(e Entry[T]) float64 { return e.Count })))
	head, _ := util.Cut(sorted, n)
	return head
}

// Bottom returns the n entries with the lowest counts.
func (l *List[T]) Bottom(n int) []Entry[T] {
	sorted := util.MultiSorted(l.entries,
		util.KeyCompare(func(e Entry[T]) float64 { return e.Count }))
	head, _ := util.Cut(sorted, n)
	return head
}

// SortByKeys returns the entries sorted by the given keys, later keys only
// breaking ties left by earlier ones. Entries tied on every key keep their
// insertion order.
func (l *List[T]) SortByKeys(keys ...func(Entry[T]) float64) []Entry[T] {
	compares := util.Map(keys, func(k func(Entry[T]) float64) func(a, b Entry[T]) int {
		return util.KeyCompare(k)
	})
	return util.MultiSorted(l.entries, compares...)
}

// WeightedList builds a random selection list where each value is weighted
// by its count.
func (l *List[T]) WeightedList(opts ...randx.Option[T]) (*randx.WeightedList[T], error) {
	items := util.Map(l.entries, func(e Entry[T]) randx.Item[T] {
		return randx.Item[T]{Value: e.Value, Weight: e.Count}
	})
	return randx.FromItems(items, opts...)
}

func (l *List[T]) add(value T, delta float64) {
	i, ok := l.index[value]
	if !ok {
		i = len(l.entries)
		l.index[value] = i
		l.entries = append(l.entries, Entry[T]{Value: value})
	}
	l.entries[i].Count += delta
	if l.entries[i].Count < 0 {
		l.entries[i].Count = 0
	}
}

func (l *List[T]) reweight() {
	total := l.Total()
	for i := range l.entries {
		if total == 0 {
			l.entries[i].Weight = 0
		} else {
			l.entries[i].Weight = l.entries[i].Count / total
		}
	}
}
