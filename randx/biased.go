package randx

// BiasedChoice randomly picks one of the values, where the weight at the
// same position gives each value its chance of being chosen.
func BiasedChoice[T comparable](values []T, weights []float64) (T, error) {
	list, err := FromValues(values, weights)
	if err != nil {
		var zero T
		return zero, err
	}
	return list.Choice()
}

// BiasedChoiceFunc randomly picks one of the values, deriving each value's
// weight from the key function.
func BiasedChoiceFunc[T comparable](values []T, key func(T) float64) (T, error) {
	list, err := FromFunc(values, key)
	if err != nil {
		var zero T
		return zero, err
	}
	return list.Choice()
}

// BiasedChoiceItems randomly picks one of the given value-weight pairs.
func BiasedChoiceItems[T comparable](items []Item[T]) (T, error) {
	list, err := FromItems(items)
	if err != nil {
		var zero T
		return zero, err
	}
	return list.Choice()
}
