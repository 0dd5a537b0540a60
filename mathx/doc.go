// Package mathx provides simple practical math operations over numeric
// slices: normalization, linear range remapping, scalar and elementwise
// vector products, and dot products.
package mathx
