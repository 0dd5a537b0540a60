package mathx

import (
	"github.com/angmorpri/morelib/errors"
)

// Number covers the built-in numeric types the vector helpers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Normalize scales a vector of non-negative values so they sum to 1.
func Normalize[T Number](vector []T) ([]float64, error) {
	if len(vector) == 0 {
		return nil, errors.EmptyCollection("Normalize")
	}
	var total float64
	for _, v := range vector {
		f := float64(v)
		if f < 0 {
			return nil, errors.NegativeValue("Normalize value", f)
		}
		total += f
	}
	if total == 0 {
		return nil, errors.InvalidInput("vector", "the sum of the values must be positive")
	}
	out := make([]float64, len(vector))
	for i, v := range vector {
		out[i] = float64(v) / total
	}
	return out, nil
}

// Scale multiplies every component of a vector by the scalar k.
func Scale[T Number](k float64, v []T) []float64 {
	out := make([]float64, len(v))
	for i, n := range v {
		out[i] = k * float64(n)
	}
	return out
}

// Hadamard performs the elementwise product of two or more vectors of equal
// length.
func Hadamard[T Number](v, w []T, more ...[]T) ([]float64, error) {
	if len(w) != len(v) {
		return nil, errors.LengthMismatch(len(v), len(w))
	}
	for _, extra := range more {
		if len(extra) != len(v) {
			return nil, errors.LengthMismatch(len(v), len(extra))
		}
	}
	out := make([]float64, len(v))
	for i := range v {
		n := float64(v[i]) * float64(w[i])
		for _, extra := range more {
			n *= float64(extra[i])
		}
		out[i] = n
	}
	return out, nil
}

// Dot performs the dot product of two or more vectors of equal length.
func Dot[T Number](v, w []T, more ...[]T) (float64, error) {
	product, err := Hadamard(v, w, more...)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, n := range product {
		sum += n
	}
	return sum, nil
}
