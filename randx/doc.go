// Package randx provides weighted random selection over collections.
//
// The core type is WeightedList, a list of value-weight pairs supporting
// biased choices, uniform choices, shuffling, weight normalization, aging
// (not-chosen items grow more likely over time), and no-repeat selection
// with an explicit exhaustion error.
//
// One-shot selections are available through BiasedChoice and its variants.
// All randomness flows through a math/rand/v2 source that tests can pin with
// WithRand.
package randx
