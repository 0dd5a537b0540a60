package mathx

import (
	"github.com/angmorpri/morelib/errors"
)

// Span is a numeric range delimited by its minimum and maximum values.
type Span struct {
	Min float64
	Max float64
}

// Remap linearly maps a value from the source range [srcMin, srcMax] into the
// destination range [dstMin, dstMax]. Both ranges must go from lower to
// higher, and the value must lie within the source range.
func Remap(value, srcMin, srcMax, dstMin, dstMax float64) (float64, error) {
	if srcMax <= srcMin || dstMax <= dstMin {
		return 0, errors.InvalidInput("range", "ranges must go from lower to higher")
	}
	if value < srcMin || value > srcMax {
		return 0, errors.OutOfRange("value", value, srcMin, srcMax)
	}
	r := (value - srcMin) / (srcMax - srcMin)
	return dstMin + r*(dstMax-dstMin), nil
}

// RemapSpan is Remap with the ranges given as Spans.
func RemapSpan(value float64, src, dst Span) (float64, error) {
	return Remap(value, src.Min, src.Max, dst.Min, dst.Max)
}
