package randx

import "math/rand/v2"

// Option configures a WeightedList at construction or through Configure.
type Option[T comparable] func(*WeightedList[T])

// WithKey sets the function used to derive the weight of values appended
// without an explicit weight.
func WithKey[T comparable](key func(T) float64) Option[T] {
	return func(l *WeightedList[T]) { l.key = key }
}

// WithNoRepeat makes every chosen value join a repeated cache, so it cannot
// be chosen again until ResetRepeated is called. Once every item is in the
// cache, choices return ErrNoItemsLeft.
func WithNoRepeat[T comparable]() Option[T] {
	return func(l *WeightedList[T]) { l.noRepeat = true }
}

// WithAlwaysAge makes the list age automatically after every choice. The
// weights in place when this option is applied are kept as a backup that
// ResetAging restores.
func WithAlwaysAge[T comparable]() Option[T] {
	return func(l *WeightedList[T]) { l.alwaysAge = true }
}

// WithAgingCoef sets the aging coefficient. The default is DefaultAgingCoef.
func WithAgingCoef[T comparable](coef float64) Option[T] {
	return func(l *WeightedList[T]) {
		if coef > 0 {
			l.agingCoef = coef
		}
	}
}

// WithRand sets the random source, allowing deterministic selections in
// tests.
func WithRand[T comparable](rng *rand.Rand) Option[T] {
	return func(l *WeightedList[T]) {
		if rng != nil {
			l.rng = rng
		}
	}
}

// Configure applies options to an existing list.
func (l *WeightedList[T]) Configure(opts ...Option[T]) {
	for _, opt := range opts {
		opt(l)
	}
	l.refreshBackup()
}
