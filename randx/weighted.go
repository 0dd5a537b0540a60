package randx

import (
	"math/rand/v2"
	"slices"

	"github.com/angmorpri/morelib/errors"
)

// DefaultAgingCoef is the factor applied to the weights of not-chosen items
// when a list ages.
const DefaultAgingCoef = 2.0

// ErrNoItemsLeft is returned when a selection has no choosable items left.
var ErrNoItemsLeft = errors.NoItemsLeft()

// Item is a value with an associated selection weight.
type Item[T comparable] struct {
	Value  T
	Weight float64
}

// WeightedList holds a list of values with weights and offers biased
// selection, aging, and no-repeat semantics over them.
//
// A WeightedList is not safe for concurrent use.
type WeightedList[T comparable] struct {
	items []Item[T]
	key   func(T) float64

	// storedWeights holds surplus weights from FromValues, handed out to
	// values appended later without an explicit weight.
	storedWeights []float64

	last      []T
	noRepeat  bool
	repeated  []T
	alwaysAge bool
	agingCoef float64
	backup    []Item[T]

	rng *rand.Rand
}

// New creates an empty WeightedList.
func New[T comparable](opts ...Option[T]) *WeightedList[T] {
	l := &WeightedList[T]{
		agingCoef: DefaultAgingCoef,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	l.Configure(opts...)
	return l
}

// FromItems creates a WeightedList from explicit value-weight pairs.
func FromItems[T comparable](items []Item[T], opts ...Option[T]) (*WeightedList[T], error) {
	l := New(opts...)
	for _, item := range items {
		if item.Weight < 0 {
			return nil, errors.NegativeValue("weight", item.Weight)
		}
		l.items = append(l.items, item)
	}
	l.refreshBackup()
	return l, nil
}

// FromValues creates a WeightedList pairing each value with the weight at the
// same position. Missing weights default to 0; surplus weights are stored and
// handed out to values appended later.
func FromValues[T comparable](values []T, weights []float64, opts ...Option[T]) (*WeightedList[T], error) {
	for _, w := range weights {
		if w < 0 {
			return nil, errors.NegativeValue("weight", w)
		}
	}
	l := New(opts...)
	for i, v := range values {
		var w float64
		if i < len(weights) {
			w = weights[i]
		}
		l.items = append(l.items, Item[T]{Value: v, Weight: w})
	}
	if len(weights) > len(values) {
		l.storedWeights = slices.Clone(weights[len(values):])
	}
	l.refreshBackup()
	return l, nil
}

// FromFunc creates a WeightedList deriving each value's weight from the key
// function. The key is remembered and applied to values appended later.
func FromFunc[T comparable](values []T, key func(T) float64, opts ...Option[T]) (*WeightedList[T], error) {
	l := New(opts...)
	l.key = key
	for _, v := range values {
		w := key(v)
		if w < 0 {
			return nil, errors.NegativeValue("weight", w)
		}
		l.items = append(l.items, Item[T]{Value: v, Weight: w})
	}
	l.refreshBackup()
	return l, nil
}

// FromUniform creates a WeightedList giving every value the same weight 1/n.
func FromUniform[T comparable](values []T, opts ...Option[T]) *WeightedList[T] {
	l := New(opts...)
	if len(values) == 0 {
		return l
	}
	w := 1 / float64(len(values))
	for _, v := range values {
		l.items = append(l.items, Item[T]{Value: v, Weight: w})
	}
	l.refreshBackup()
	return l
}

// Clone returns an independent copy of the list with the same items and
// configuration but fresh selection state (no repeated cache, no last
// choices).
func (l *WeightedList[T]) Clone() *WeightedList[T] {
	return &WeightedList[T]{
		items:         slices.Clone(l.items),
		key:           l.key,
		storedWeights: slices.Clone(l.storedWeights),
		noRepeat:      l.noRepeat,
		alwaysAge:     l.alwaysAge,
		agingCoef:     l.agingCoef,
		backup:        slices.Clone(l.backup),
		rng:           rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// --- Generic list operations ---

// Append adds a value to the list. Its weight comes from the stored surplus
// weights if any remain, from the key function if one is set, and defaults
// to 0 otherwise.
func (l *WeightedList[T]) Append(value T) error {
	if len(l.storedWeights) > 0 {
		w := l.storedWeights[0]
		l.storedWeights = l.storedWeights[1:]
		return l.AppendWeighted(value, w)
	}
	if l.key != nil {
		return l.AppendWeighted(value, l.key(value))
	}
	return l.AppendWeighted(value, 0)
}

// AppendWeighted adds a value with an explicit weight.
func (l *WeightedList[T]) AppendWeighted(value T, weight float64) error {
	if weight < 0 {
		return errors.NegativeValue("weight", weight)
	}
	l.items = append(l.items, Item[T]{Value: value, Weight: weight})
	l.refreshBackup()
	return nil
}

// Remove deletes the first item whose value matches and returns it.
func (l *WeightedList[T]) Remove(value T) (Item[T], error) {
	for i, item := range l.items {
		if item.Value == value {
			l.items = slices.Delete(l.items, i, i+1)
			return item, nil
		}
	}
	var zero Item[T]
	return zero, errors.NotFound("element", value)
}

// Pop removes and returns the value of the last item.
func (l *WeightedList[T]) Pop() (T, error) {
	return l.PopAt(len(l.items) - 1)
}

// PopAt removes and returns the value of the item at position i.
func (l *WeightedList[T]) PopAt(i int) (T, error) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, errors.OutOfRange("index", float64(i), 0, float64(len(l.items)-1))
	}
	item := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return item.Value, nil
}

// Clear removes all the items, keeping the key and the stored weights.
func (l *WeightedList[T]) Clear() {
	l.items = nil
}

// ClearAll removes the items, the stored weights and the key function.
func (l *WeightedList[T]) ClearAll() {
	l.items = nil
	l.storedWeights = nil
	l.key = nil
}

// IndexOf returns the position of the first item whose value matches, or -1.
func (l *WeightedList[T]) IndexOf(value T) int {
	for i, item := range l.items {
		if item.Value == value {
			return i
		}
	}
	return -1
}

// Count returns how many items hold the given value.
func (l *WeightedList[T]) Count(value T) int {
	n := 0
	for _, item := range l.items {
		if item.Value == value {
			n++
		}
	}
	return n
}

// SortFunc sorts the items in place using the given comparison.
func (l *WeightedList[T]) SortFunc(compare func(a, b Item[T]) int) {
	slices.SortStableFunc(l.items, compare)
}

// Items returns a copy of the value-weight pairs.
func (l *WeightedList[T]) Items() []Item[T] {
	return slices.Clone(l.items)
}

// Values returns the values in the list, without their weights.
func (l *WeightedList[T]) Values() []T {
	values := make([]T, len(l.items))
	for i, item := range l.items {
		values[i] = item.Value
	}
	return values
}

// Weights returns the weights in the list, without their values.
func (l *WeightedList[T]) Weights() []float64 {
	weights := make([]float64, len(l.items))
	for i, item := range l.items {
		weights[i] = item.Weight
	}
	return weights
}

// WeightOf returns the weight of the first item whose value matches.
func (l *WeightedList[T]) WeightOf(value T) (float64, bool) {
	for _, item := range l.items {
		if item.Value == value {
			return item.Weight, true
		}
	}
	return 0, false
}

// At returns the value at position i. It panics if i is out of range, like a
// slice access.
func (l *WeightedList[T]) At(i int) T {
	return l.items[i].Value
}

// Len returns the number of items in the list.
func (l *WeightedList[T]) Len() int {
	return len(l.items)
}

// refreshBackup snapshots the current weights so ResetAging can restore them.
// Only meaningful while always-age is active.
func (l *WeightedList[T]) refreshBackup() {
	if l.alwaysAge {
		l.backup = slices.Clone(l.items)
	}
}
