// Package distance provides the float32 vector kernels used by the metric views.
// Dot products are delegated to gonum's BLAS level-1 routines.
package distance

import (
	"math"

	"gonum.org/v1/gonum/blas/blas32"
)

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}

	return blas32.Dot(
		blas32.Vector{N: len(a), Inc: 1, Data: a},
		blas32.Vector{N: len(b), Inc: 1, Data: b},
	)
}

// SquaredNorm returns the squared L2 norm of v.
func SquaredNorm(v []float32) float32 {
	return Dot(v, v)
}

// Norm returns the L2 norm of v.
func Norm(v []float32) float32 {
	return float32(math.Sqrt(float64(SquaredNorm(v))))
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// SquaredL2FromNorms evaluates |a-b|^2 as |a|^2 + |b|^2 - 2*a.b.
// Rounding can push the result slightly below zero, so it is clamped.
func SquaredL2FromNorms(sqNormA, sqNormB, dot float32) float32 {
	d := sqNormA + sqNormB - 2*dot
	if d < 0 {
		return 0
	}

	return d
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	norm2 := SquaredNorm(v)
	if norm2 == 0 {
		return false
	}

	inv := float32(1 / math.Sqrt(float64(norm2)))
	blas32.Scal(inv, blas32.Vector{N: len(v), Inc: 1, Data: v})

	return true
}
