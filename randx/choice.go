package randx

import (
	"iter"
	"slices"
)

// ChoiceOption overrides list-level behavior for a single call.
type ChoiceOption func(*choiceOpts)

type choiceOpts struct {
	noRepeat bool
	age      bool
}

// NoRepeat forces no-repeat semantics for this call only.
func NoRepeat() ChoiceOption {
	return func(o *choiceOpts) { o.noRepeat = true }
}

// Aging forces the list to age after each selection of this call.
func Aging() ChoiceOption {
	return func(o *choiceOpts) { o.age = true }
}

// Shuffle randomly rearranges the items in the list.
func (l *WeightedList[T]) Shuffle() {
	l.rng.Shuffle(len(l.items), func(i, j int) {
		l.items[i], l.items[j] = l.items[j], l.items[i]
	})
}

// Choice randomly picks one value, with each item's weight acting as its
// probability of being chosen.
func (l *WeightedList[T]) Choice(opts ...ChoiceOption) (T, error) {
	values, err := l.ChoiceN(1, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return values[0], nil
}

// ChoiceN randomly picks k values, with each item's weight acting as its
// probability of being chosen. Zero-weight items are never chosen. When
// no-repeat is active (globally or per call) each chosen value is excluded
// from the following selections; with the list-level option the exclusions
// persist across calls until ResetRepeated. ChoiceN returns ErrNoItemsLeft
// once no choosable items remain.
func (l *WeightedList[T]) ChoiceN(k int, opts ...ChoiceOption) ([]T, error) {
	co := choiceOpts{noRepeat: l.noRepeat, age: l.alwaysAge}
	for _, opt := range opts {
		opt(&co)
	}

	repeated := slices.Clone(l.repeated)
	choices := make([]T, 0, k)
	for range k {
		allowed := make([]Item[T], 0, len(l.items))
		for _, item := range l.items {
			if item.Weight <= 0 {
				continue
			}
			if co.noRepeat && slices.Contains(repeated, item.Value) {
				continue
			}
			allowed = append(allowed, item)
		}
		if len(allowed) == 0 {
			return nil, ErrNoItemsLeft
		}

		// Cumulative-weight scan over the shuffled candidates.
		l.rng.Shuffle(len(allowed), func(i, j int) {
			allowed[i], allowed[j] = allowed[j], allowed[i]
		})
		var total float64
		for _, item := range allowed {
			total += item.Weight
		}
		target := l.rng.Float64() * total
		choice := allowed[len(allowed)-1].Value
		var cumulative float64
		for _, item := range allowed {
			cumulative += item.Weight
			if target < cumulative {
				choice = item.Value
				break
			}
		}
		choices = append(choices, choice)

		l.last = slices.Clone(choices)
		if co.noRepeat {
			repeated = append(repeated, choice)
		}
		if co.age {
			l.Age()
		}
	}

	if l.noRepeat {
		l.repeated = repeated
	}
	return choices, nil
}

// UniformChoice randomly picks one value ignoring the weights.
func (l *WeightedList[T]) UniformChoice() (T, error) {
	values, err := l.UniformChoiceN(1)
	if err != nil {
		var zero T
		return zero, err
	}
	return values[0], nil
}

// UniformChoiceN randomly picks k values ignoring the weights. It does not
// consult the list-level no-repeat or aging configuration; the NoRepeat
// option applies within this call only.
func (l *WeightedList[T]) UniformChoiceN(k int, opts ...ChoiceOption) ([]T, error) {
	co := choiceOpts{}
	for _, opt := range opts {
		opt(&co)
	}

	values := l.Values()
	var picked []T
	choices := make([]T, 0, k)
	for range k {
		allowed := values
		if co.noRepeat {
			allowed = make([]T, 0, len(values))
			for _, v := range values {
				if !slices.Contains(picked, v) {
					allowed = append(allowed, v)
				}
			}
		}
		if len(allowed) == 0 {
			return nil, ErrNoItemsLeft
		}
		choice := allowed[l.rng.IntN(len(allowed))]
		picked = append(picked, choice)
		choices = append(choices, choice)
	}
	return choices, nil
}

// --- Weight modifiers ---

// Uniform gives every item the same weight 1/n.
func (l *WeightedList[T]) Uniform() {
	if len(l.items) == 0 {
		return
	}
	w := 1 / float64(len(l.items))
	for i := range l.items {
		l.items[i].Weight = w
	}
}

// NormalizeWeights remaps the weights so they sum to 1. It is a no-op when
// the total weight is zero.
func (l *WeightedList[T]) NormalizeWeights() {
	var total float64
	for _, item := range l.items {
		total += item.Weight
	}
	if total == 0 {
		return
	}
	for i := range l.items {
		l.items[i].Weight /= total
	}
}

// Age multiplies the weight of every item that was NOT among the last
// choices by the aging coefficient, making them more likely next time, and
// then normalizes the weights.
func (l *WeightedList[T]) Age() {
	for i, item := range l.items {
		if !slices.Contains(l.last, item.Value) {
			l.items[i].Weight *= l.agingCoef
		}
	}
	l.NormalizeWeights()
}

// --- State management ---

// ResetRepeated empties the repeated cache so every item can be chosen again.
func (l *WeightedList[T]) ResetRepeated() {
	l.repeated = nil
}

// ResetAging restores the weights captured when always-age was activated.
func (l *WeightedList[T]) ResetAging() {
	if l.backup != nil {
		l.items = slices.Clone(l.backup)
	}
}

// Gen returns a sequence of successive Choice results. The sequence ends
// when the list runs out of choosable items (no-repeat exhaustion); without
// no-repeat it is endless, so the caller is expected to break.
func (l *WeightedList[T]) Gen() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, err := l.Choice()
			if err != nil {
				return
			}
			if !yield(value) {
				return
			}
		}
	}
}
